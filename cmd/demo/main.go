// cmd/demo exercises the pricelevel core directly: it places a handful
// of orders of different kinds on a single level, matches an aggressor
// against them, and prints the resulting snapshot. It replaces the
// teacher's TCP client/server pair (out of scope for this core per spec
// §1 — no persistence or network transport of orders) with a direct,
// in-process walkthrough of the same lifecycle: place, match, snapshot.
package main

import (
	"os"

	"levelcore/common"
	"levelcore/pricelevel"
	"levelcore/textcodec"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	clock := pricelevel.SystemClock{}
	txns := pricelevel.NewAtomicTransactionIDSource()
	level := pricelevel.NewPriceLevel(10_000, clock)

	now := clock.NowMillis()
	level.AddOrder(common.NewStandardOrder(common.NewOrderId(), 10_000, common.Buy, 100, now, common.NewGoodTillCancel()))
	level.AddOrder(common.NewIcebergOrder(common.NewOrderId(), 10_000, common.Buy, 50, 150, now, common.NewGoodTillCancel()))
	replenish := uint64(50)
	level.AddOrder(common.NewReserveOrder(common.NewOrderId(), 10_000, common.Buy, 50, 150, 20, &replenish, true, now, common.NewGoodTillCancel()))

	log.Info().Int("orderCount", int(level.OrderCount())).Msg("orders resting")

	result := level.MatchOrder(120, common.NewOrderId(), txns)
	log.Info().
		Int("fills", len(result.Transactions)).
		Uint64("remaining", result.RemainingQuantity).
		Bool("complete", result.IsComplete()).
		Msg("match_order result")

	snap := level.Snapshot()
	log.Info().Str("snapshot", textcodec.EncodeSnapshot(snap)).Msg("level snapshot")
}
