package pricelevel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatistics_OrderAddedRemoved(t *testing.T) {
	clock := newFixedClock(0)
	s := NewStatistics(clock)

	s.RecordOrderAdded()
	s.RecordOrderAdded()
	s.RecordOrderRemoved()

	assert.Equal(t, uint64(2), s.OrdersAdded())
	assert.Equal(t, uint64(1), s.OrdersRemoved())
}

func TestStatistics_RecordExecutionAccumulates(t *testing.T) {
	clock := newFixedClock(100)
	s := NewStatistics(clock)

	s.RecordExecution(10, 5, 100) // maker arrived at t=100
	s.RecordExecution(20, 5, 100)

	assert.Equal(t, uint64(2), s.OrdersExecuted())
	assert.Equal(t, uint64(30), s.QuantityExecuted())
	assert.Equal(t, uint64(150), s.ValueExecuted())

	avg, ok := s.AverageExecutionPrice()
	assert.True(t, ok)
	assert.Equal(t, float64(5), avg)
}

func TestStatistics_AverageWaitingTime(t *testing.T) {
	clock := newFixedClock(0)
	s := NewStatistics(clock)

	_, ok := s.AverageWaitingTime()
	assert.False(t, ok)

	clock.Set(100)
	s.RecordExecution(1, 1, 50) // now ticks to 101, waiting = 51
	avg, ok := s.AverageWaitingTime()
	assert.True(t, ok)
	assert.Equal(t, float64(51), avg)
}

func TestStatistics_TimeSinceLastExecution(t *testing.T) {
	clock := newFixedClock(0)
	s := NewStatistics(clock)

	_, ok := s.TimeSinceLastExecution(10)
	assert.False(t, ok)

	clock.Set(100)
	s.RecordExecution(1, 1, 0) // makerTimestamp=0 skips waiting-time accumulation
	elapsed, ok := s.TimeSinceLastExecution(150)
	assert.True(t, ok)
	assert.Equal(t, uint64(49), elapsed) // last execution stamped at tick 101
}

func TestStatistics_Reset(t *testing.T) {
	clock := newFixedClock(0)
	s := NewStatistics(clock)
	s.RecordOrderAdded()
	s.RecordExecution(10, 5, 0)

	s.Reset()

	assert.Equal(t, uint64(0), s.OrdersAdded())
	assert.Equal(t, uint64(0), s.OrdersExecuted())
	assert.Equal(t, uint64(0), s.QuantityExecuted())
	assert.Equal(t, uint64(0), s.ValueExecuted())
	assert.Equal(t, uint64(0), s.SumWaitingTime())
	assert.NotEqual(t, uint64(0), s.FirstArrivalTime())
}
