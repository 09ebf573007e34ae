package catch

import (
	"math"
	"testing"

	"github.com/zeroplus75/tm-pose-game2/internal/config"
)

func TestKindDistribution(t *testing.T) {
	sp := newSpawner(config.DefaultCatchConfig().Spawn, 42)

	const draws = 20000
	counts := make(map[Kind]int)
	for i := 0; i < draws; i++ {
		counts[sp.rollKind()]++
	}

	want := map[Kind]float64{
		KindBomb:   0.20,
		KindApple:  0.40,
		KindPear:   0.25,
		KindOrange: 0.15,
	}
	for kind, frac := range want {
		got := float64(counts[kind]) / draws
		if math.Abs(got-frac) > 0.02 {
			t.Errorf("%v frequency = %.3f, expected %.2f ± 0.02", kind, got, frac)
		}
	}
}

func TestZoneDistribution(t *testing.T) {
	sp := newSpawner(config.DefaultCatchConfig().Spawn, 7)

	const draws = 9000
	counts := make(map[Zone]int)
	for i := 0; i < draws; i++ {
		z := sp.rollZone()
		if !z.Valid() {
			t.Fatalf("rollZone returned invalid zone %v", z)
		}
		counts[z]++
	}

	for _, z := range []Zone{ZoneLeft, ZoneCenter, ZoneRight} {
		got := float64(counts[z]) / draws
		if math.Abs(got-1.0/3.0) > 0.02 {
			t.Errorf("zone %v frequency = %.3f, expected ~0.333", z, got)
		}
	}
}

func TestIntervalRange(t *testing.T) {
	cfg := config.DefaultCatchConfig().Spawn
	sp := newSpawner(cfg, 3)

	for _, dropSecs := range []float64{2.0, 1.4, 0.5} {
		lo := cfg.MinIntervalFrac * dropSecs * 1000
		hi := cfg.MaxIntervalFrac * dropSecs * 1000

		for i := 0; i < 1000; i++ {
			got := sp.rollInterval(dropSecs)
			if got < lo || got >= hi {
				t.Fatalf("rollInterval(%v) = %v, expected in [%v, %v)", dropSecs, got, lo, hi)
			}
		}
	}
}

func TestSpawnScheduling(t *testing.T) {
	sp := newSpawner(config.DefaultCatchConfig().Spawn, 99)
	sp.reset(0, 2.0)

	// First interval is in [1200, 1600) ms.
	if sp.due(1200) {
		t.Error("spawner due before the minimum interval")
	}
	if !sp.due(1601) {
		t.Error("spawner not due after the maximum interval")
	}

	it := sp.spawn(1601, 2.0)
	if it.Y != 0 {
		t.Errorf("new item Y = %v, expected 0 (top)", it.Y)
	}
	if it.Caught || it.Resolved {
		t.Error("new item must be live")
	}

	// Rescheduled relative to the spawn time.
	if sp.due(1601 + 1200) {
		t.Error("spawner due again before the minimum interval")
	}
	if !sp.due(1601 + 1601) {
		t.Error("spawner not rescheduled after spawn")
	}
}
