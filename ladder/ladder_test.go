package ladder

import (
	"testing"

	"levelcore/common"
	"levelcore/pricelevel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLadder_LevelForCreatesThenReuses(t *testing.T) {
	l := New(common.Buy, pricelevel.SystemClock{})

	first := l.LevelFor(10_000)
	second := l.LevelFor(10_000)
	assert.Same(t, first, second)

	third := l.LevelFor(10_100)
	assert.NotSame(t, first, third)
}

func TestLadder_BidsOrderedHighestFirst(t *testing.T) {
	l := New(common.Buy, pricelevel.SystemClock{})
	l.LevelFor(10_000)
	l.LevelFor(10_200)
	l.LevelFor(10_100)

	prices := make([]uint64, 0, 3)
	for _, level := range l.Levels() {
		prices = append(prices, level.Price())
	}
	assert.Equal(t, []uint64{10_200, 10_100, 10_000}, prices)
}

func TestLadder_AsksOrderedLowestFirst(t *testing.T) {
	l := New(common.Sell, pricelevel.SystemClock{})
	l.LevelFor(10_200)
	l.LevelFor(10_000)
	l.LevelFor(10_100)

	prices := make([]uint64, 0, 3)
	for _, level := range l.Levels() {
		prices = append(prices, level.Price())
	}
	assert.Equal(t, []uint64{10_000, 10_100, 10_200}, prices)
}

func TestLadder_BestSkipsEmptyLevels(t *testing.T) {
	l := New(common.Buy, pricelevel.SystemClock{})
	l.LevelFor(10_100) // stays empty
	populated := l.LevelFor(10_000)
	populated.AddOrder(common.NewStandardOrder(common.NewOrderId(), 10_000, common.Buy, 10, 1, common.NewGoodTillCancel()))

	best, ok := l.Best()
	require.True(t, ok)
	assert.Equal(t, uint64(10_000), best.Price())
}

func TestLadder_BestEmptyWhenNoLiquidity(t *testing.T) {
	l := New(common.Buy, pricelevel.SystemClock{})
	l.LevelFor(10_000)

	_, ok := l.Best()
	assert.False(t, ok)
}

func TestLadder_DropEmptyRemovesOnlyEmptyLevels(t *testing.T) {
	l := New(common.Buy, pricelevel.SystemClock{})
	populated := l.LevelFor(10_000)
	populated.AddOrder(common.NewStandardOrder(common.NewOrderId(), 10_000, common.Buy, 10, 1, common.NewGoodTillCancel()))
	l.LevelFor(10_100) // empty

	l.DropEmpty()

	prices := make([]uint64, 0, 1)
	for _, level := range l.Levels() {
		prices = append(prices, level.Price())
	}
	assert.Equal(t, []uint64{10_000}, prices)
}
