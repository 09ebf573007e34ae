package catch

import (
	"math/rand"

	"github.com/zeroplus75/tm-pose-game2/internal/config"
)

// spawner schedules and creates falling items. The next spawn interval is
// drawn uniformly from a fraction window of the current drop time, so item
// density stays roughly constant as levels speed the fall up.
type spawner struct {
	cfg            config.CatchSpawn
	rng            *rand.Rand
	lastSpawnMs    int64
	nextIntervalMs float64
}

func newSpawner(cfg config.CatchSpawn, seed int64) *spawner {
	return &spawner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// reset schedules the first spawn relative to nowMs.
func (sp *spawner) reset(nowMs int64, dropSecs float64) {
	sp.lastSpawnMs = nowMs
	sp.nextIntervalMs = sp.rollInterval(dropSecs)
}

// due reports whether the scheduled spawn time has passed.
func (sp *spawner) due(nowMs int64) bool {
	return float64(nowMs) > float64(sp.lastSpawnMs)+sp.nextIntervalMs
}

// spawn creates one item at the top of a random lane and reschedules.
func (sp *spawner) spawn(nowMs int64, dropSecs float64) Item {
	it := Item{
		Kind: sp.rollKind(),
		Zone: sp.rollZone(),
	}
	sp.lastSpawnMs = nowMs
	sp.nextIntervalMs = sp.rollInterval(dropSecs)
	return it
}

// rollKind draws from the categorical kind distribution
// (defaults: bomb 20%, apple 40%, pear 25%, orange 15%).
func (sp *spawner) rollKind() Kind {
	r := sp.rng.Float64()

	cut := sp.cfg.BombWeight
	if r < cut {
		return KindBomb
	}
	cut += sp.cfg.AppleWeight
	if r < cut {
		return KindApple
	}
	cut += sp.cfg.PearWeight
	if r < cut {
		return KindPear
	}
	return KindOrange
}

// rollZone draws a lane uniformly, independent of kind.
func (sp *spawner) rollZone() Zone {
	return Zone(sp.rng.Intn(ZoneCount))
}

// rollInterval draws the next spawn interval in milliseconds, uniform over
// [MinIntervalFrac, MaxIntervalFrac) of the drop time.
func (sp *spawner) rollInterval(dropSecs float64) float64 {
	lo := sp.cfg.MinIntervalFrac * dropSecs * 1000
	hi := sp.cfg.MaxIntervalFrac * dropSecs * 1000
	return lo + sp.rng.Float64()*(hi-lo)
}
