package catch

import (
	"math"
	"testing"

	"github.com/zeroplus75/tm-pose-game2/internal/config"
)

// quietConfig returns the default tuning with spawning pushed so far into
// the future that tests fully control the item collection.
func quietConfig() config.CatchConfig {
	cfg := config.DefaultCatchConfig()
	cfg.Spawn.MinIntervalFrac = 1e6
	cfg.Spawn.MaxIntervalFrac = 2e6
	return cfg
}

func TestDropTimeFormula(t *testing.T) {
	timing := config.DefaultCatchConfig().Timing

	prev := math.Inf(1)
	for level := 1; level <= 20; level++ {
		got := dropTimeForLevel(timing, level)

		want := 2.0 - float64(level-1)*0.2
		if want < 0.5 {
			want = 0.5
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("dropTimeForLevel(%d) = %v, expected %v", level, got, want)
		}
		if got > prev {
			t.Errorf("drop time increased at level %d: %v > %v", level, got, prev)
		}
		if got < 0.5 {
			t.Errorf("drop time below floor at level %d: %v", level, got)
		}
		prev = got
	}
}

func TestMotionIsLinear(t *testing.T) {
	e := New(quietConfig(), 1)
	e.Start(0)
	e.items = append(e.items, Item{Kind: KindApple, Zone: ZoneLeft, Y: 0.1})

	// dt = 0.2s at drop time 2.0s moves the item 0.1 of the height.
	e.Update(200)

	got := e.items[0].Y
	if math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Y after tick = %v, expected 0.2", got)
	}
	if got < 0.1 {
		t.Error("Y must never decrease")
	}
}

func TestCatchFruitInMatchingZone(t *testing.T) {
	// Scenario: one apple falls down the center lane with the basket at
	// center; crossing the catch window scores 100 with no game end.
	e := New(quietConfig(), 1)

	var changes int
	e.OnChange(func(score, level, misses int) { changes++ })
	ended := false
	e.OnGameEnd(func(score, level int, reason string) { ended = true })

	e.Start(0)
	e.items = append(e.items, Item{Kind: KindApple, Zone: ZoneCenter, Y: 0.8})

	if e.BasketZone() != ZoneCenter {
		t.Fatalf("default basket zone = %v, expected center", e.BasketZone())
	}

	e.Update(200) // y -> 0.9, inside [0.85, 1.0)

	if e.Score() != 100 {
		t.Errorf("Score = %d, expected 100", e.Score())
	}
	if changes != 1 {
		t.Errorf("change notifications = %d, expected 1", changes)
	}
	if ended || !e.Active() {
		t.Error("catching a fruit must not end the game")
	}
	if len(e.Items()) != 0 {
		t.Errorf("caught item should be collected, %d items remain", len(e.Items()))
	}
}

func TestRewardsPerKind(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindApple, 100},
		{KindPear, 150},
		{KindOrange, 200},
	}

	for _, tt := range tests {
		e := New(quietConfig(), 1)
		e.Start(0)
		e.items = append(e.items, Item{Kind: tt.kind, Zone: ZoneCenter, Y: 0.88})

		e.Update(10)

		if e.Score() != tt.want {
			t.Errorf("catching %v scored %d, expected %d", tt.kind, e.Score(), tt.want)
		}
	}
}

func TestBombCaughtEndsGame(t *testing.T) {
	// Scenario: a bomb in the left lane with the basket at left; reaching
	// the catch window is an immediate game over.
	e := New(quietConfig(), 1)

	var endScore, endLevel int
	var endReason string
	ends := 0
	e.OnGameEnd(func(score, level int, reason string) {
		endScore, endLevel, endReason = score, level, reason
		ends++
	})

	e.Start(0)
	e.SetBasketZone(ZoneLeft)
	e.items = append(e.items, Item{Kind: KindBomb, Zone: ZoneLeft, Y: 0.8})

	e.Update(200)

	if e.Active() {
		t.Error("bomb catch must deactivate the engine")
	}
	if ends != 1 {
		t.Fatalf("game-end notifications = %d, expected 1", ends)
	}
	if endReason != ReasonBombHit {
		t.Errorf("reason = %q, expected %q", endReason, ReasonBombHit)
	}
	if endScore != 0 || endLevel != 1 {
		t.Errorf("end notification = (%d, %d), expected (0, 1)", endScore, endLevel)
	}

	// Terminal: further ticks are no-ops.
	before := e.Items()
	e.Update(400)
	after := e.Items()
	if len(before) != len(after) {
		t.Error("Update after game over must not advance the simulation")
	}
}

func TestTwoMissesEndGame(t *testing.T) {
	// Scenario: two fruits fall down lanes the basket never matches; the
	// second one crossing y=1.0 ends the game.
	e := New(quietConfig(), 1)

	var reasons []string
	e.OnGameEnd(func(score, level int, reason string) { reasons = append(reasons, reason) })

	e.Start(0)
	e.items = append(e.items,
		Item{Kind: KindApple, Zone: ZoneLeft, Y: 0.95},
		Item{Kind: KindApple, Zone: ZoneLeft, Y: 0.55},
	)
	// Basket stays at center; neither apple can be caught.

	e.Update(200) // first apple -> 1.05: miss 1, second -> 0.65
	if e.Misses() != 1 {
		t.Fatalf("Misses after first = %d, expected 1", e.Misses())
	}
	if !e.Active() {
		t.Fatal("one miss must not end the game")
	}

	e.Update(900) // second apple -> 1.0: miss 2, terminal
	if e.Misses() != 2 {
		t.Errorf("Misses = %d, expected 2", e.Misses())
	}
	if e.Active() {
		t.Error("second miss must end the game")
	}
	if len(reasons) != 1 || reasons[0] != ReasonFruitsMissed {
		t.Errorf("end reasons = %v, expected one %q", reasons, ReasonFruitsMissed)
	}
}

func TestMissCountsOncePerItem(t *testing.T) {
	e := New(quietConfig(), 1)
	e.Start(0)
	e.items = append(e.items, Item{Kind: KindPear, Zone: ZoneLeft, Y: 0.99})

	e.Update(50) // crosses 1.0: miss
	if e.Misses() != 1 {
		t.Fatalf("Misses = %d, expected 1", e.Misses())
	}

	e.Update(100) // same item keeps falling, still resolved
	e.Update(150)
	if e.Misses() != 1 {
		t.Errorf("resolved item was re-counted, Misses = %d", e.Misses())
	}
}

func TestMissedBombIsForgiven(t *testing.T) {
	e := New(quietConfig(), 1)

	ended := false
	e.OnGameEnd(func(score, level int, reason string) { ended = true })

	e.Start(0)
	e.items = append(e.items, Item{Kind: KindBomb, Zone: ZoneLeft, Y: 0.95})
	// Basket at center, bomb sails past.

	e.Update(200) // y -> 1.05

	if e.Misses() != 0 {
		t.Errorf("a missed bomb must not count, Misses = %d", e.Misses())
	}
	if ended || !e.Active() {
		t.Error("a missed bomb must not end the game")
	}
	if !e.items[0].Resolved {
		t.Error("a passed bomb must be marked resolved to stop re-evaluation")
	}
}

func TestZoneMismatchLeavesItemLive(t *testing.T) {
	e := New(quietConfig(), 1)
	e.Start(0)
	e.items = append(e.items, Item{Kind: KindOrange, Zone: ZoneRight, Y: 0.86})

	// Basket at center: inside the window but no match, item stays live.
	e.Update(20) // y -> 0.87
	if e.items[0].Caught || e.items[0].Resolved {
		t.Fatal("mismatched item in window must stay unresolved")
	}

	// Basket moves to the item's lane; the next tick inside the window
	// catches it.
	e.SetBasketZone(ZoneRight)
	e.Update(40)
	if e.Score() != 200 {
		t.Errorf("Score = %d, expected 200 after late catch", e.Score())
	}
}

func TestLevelUpAtDuration(t *testing.T) {
	// Scenario: the level timer reaching the level duration advances the
	// level, resets the timer and speeds the fall up.
	e := New(quietConfig(), 1)

	levels := []int{}
	e.OnChange(func(score, level, misses int) { levels = append(levels, level) })

	e.Start(0)
	e.Update(20000)

	if e.Level() != 2 {
		t.Errorf("Level = %d, expected 2", e.Level())
	}
	if e.LevelTime() != 0 {
		t.Errorf("LevelTime = %v, expected 0 after level-up", e.LevelTime())
	}
	if math.Abs(e.DropTime()-1.8) > 1e-9 {
		t.Errorf("DropTime = %v, expected 1.8", e.DropTime())
	}
	if len(levels) != 1 || levels[0] != 2 {
		t.Errorf("change notifications carried levels %v, expected [2]", levels)
	}
}

func TestLevelUpAppliesBeforeMotion(t *testing.T) {
	e := New(quietConfig(), 1)
	e.Start(0)
	e.Update(19900)
	e.items = append(e.items, Item{Kind: KindApple, Zone: ZoneLeft, Y: 0})

	// This tick crosses the level boundary; the motion step must already
	// use the level-2 drop time of 1.8s.
	e.Update(20000)

	want := 0.1 / 1.8
	if math.Abs(e.items[0].Y-want) > 1e-9 {
		t.Errorf("Y = %v, expected %v (new drop time within the same tick)", e.items[0].Y, want)
	}
}

func TestProgressionDisabled(t *testing.T) {
	cfg := quietConfig()
	cfg.Progression.Enabled = false

	e := New(cfg, 1)
	e.Start(0)
	e.Update(60000)

	if e.Level() != 1 {
		t.Errorf("Level = %d, expected 1 with progression disabled", e.Level())
	}
}

func TestGarbageCollection(t *testing.T) {
	e := New(quietConfig(), 1)
	e.Start(0)
	e.items = append(e.items, Item{Kind: KindBomb, Zone: ZoneLeft, Y: 1.15})

	e.Update(400) // y -> 1.35, past the despawn line

	if len(e.Items()) != 0 {
		t.Errorf("item past the despawn line survived, %d items remain", len(e.Items()))
	}
}

func TestStartResetsState(t *testing.T) {
	e := New(quietConfig(), 1)
	e.Start(0)
	e.items = append(e.items, Item{Kind: KindApple, Zone: ZoneCenter, Y: 0.88})
	e.Update(10)
	e.Update(20000)

	if e.Score() == 0 || e.Level() == 1 {
		t.Fatal("setup should have produced a score and a level-up")
	}

	e.Start(50000)

	if e.Score() != 0 || e.Level() != 1 || e.Misses() != 0 {
		t.Errorf("Start left state (%d, %d, %d), expected zeros", e.Score(), e.Level(), e.Misses())
	}
	if e.LevelTime() != 0 || len(e.Items()) != 0 {
		t.Error("Start must reset the level clock and empty the item collection")
	}
	if math.Abs(e.DropTime()-2.0) > 1e-9 {
		t.Errorf("DropTime = %v, expected 2.0 at level 1", e.DropTime())
	}
	if !e.Active() {
		t.Error("Start must activate the engine")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	e := New(quietConfig(), 1)
	e.Start(0)
	e.items = append(e.items, Item{Kind: KindApple, Zone: ZoneLeft, Y: 0.3})
	e.Update(100)

	e.Stop()
	score, level, misses := e.Score(), e.Level(), e.Misses()
	items := len(e.Items())

	e.Stop()

	if e.Active() {
		t.Error("engine must stay inactive")
	}
	if e.Score() != score || e.Level() != level || e.Misses() != misses || len(e.Items()) != items {
		t.Error("second Stop changed state")
	}
}

func TestUpdateWhileInactive(t *testing.T) {
	e := New(quietConfig(), 1)
	// Never started.
	e.items = append(e.items, Item{Kind: KindApple, Zone: ZoneLeft, Y: 0.5})

	e.Update(1000)

	if e.items[0].Y != 0.5 {
		t.Error("Update while inactive must not move items")
	}
}

func TestSetBasketLabel(t *testing.T) {
	e := New(quietConfig(), 1)

	e.SetBasketLabel("LEFT")
	if e.BasketZone() != ZoneLeft {
		t.Errorf("BasketZone = %v, expected left", e.BasketZone())
	}

	// Unrecognized labels keep the previous lane.
	e.SetBasketLabel("banana")
	if e.BasketZone() != ZoneLeft {
		t.Errorf("invalid label moved the basket to %v", e.BasketZone())
	}

	e.SetBasketLabel(" right ")
	if e.BasketZone() != ZoneRight {
		t.Errorf("BasketZone = %v, expected right", e.BasketZone())
	}

	e.SetBasketZone(Zone(99))
	if e.BasketZone() != ZoneRight {
		t.Error("invalid zone value must be ignored")
	}
}

func TestSpawningSchedule(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	e := New(cfg, 42)
	e.Start(0)

	// At level 1 the first interval is in [1200, 1600) ms; ticking well
	// past it must have produced at least one item, spawned at the top.
	sawSpawn := false
	for now := int64(100); now <= 1700; now += 100 {
		e.Update(now)
		for _, it := range e.Items() {
			if !it.Zone.Valid() {
				t.Fatalf("spawned item with invalid zone %v", it.Zone)
			}
			sawSpawn = true
		}
	}
	if !sawSpawn {
		t.Error("no item spawned within the maximum first interval")
	}
}

func TestMultipleSubscribers(t *testing.T) {
	e := New(quietConfig(), 1)

	a, b := 0, 0
	e.OnChange(func(score, level, misses int) { a++ })
	e.OnChange(func(score, level, misses int) { b++ })

	e.Start(0)
	e.items = append(e.items, Item{Kind: KindApple, Zone: ZoneCenter, Y: 0.88})
	e.Update(10)

	if a != 1 || b != 1 {
		t.Errorf("subscribers saw (%d, %d) notifications, expected (1, 1)", a, b)
	}
}
