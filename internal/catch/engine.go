package catch

import (
	"sync/atomic"

	"github.com/zeroplus75/tm-pose-game2/internal/config"
)

// Game-over reasons passed to end-of-game subscribers.
const (
	ReasonBombHit      = "bomb hit"
	ReasonFruitsMissed = "two fruits missed"
)

// ChangeFunc receives score/level/miss updates. Fired synchronously on
// every catch, every miss and every level-up.
type ChangeFunc func(score, level, misses int)

// EndFunc receives the terminal game-over notification, exactly once per
// session.
type EndFunc func(score, level int, reason string)

// Engine is the catch game simulation. It is advanced exclusively by
// serialized Update calls from a host loop; the only state written from
// outside that loop is the basket lane, which is a single atomic word so a
// classifier goroutine may set it between ticks.
type Engine struct {
	cfg config.CatchConfig
	sp  *spawner

	active     bool
	score      int
	level      int
	misses     int
	levelTime  float64 // seconds into the current level
	dropTime   float64 // seconds for a full-height fall at the current level
	lastTickMs int64
	items      []Item

	basket atomic.Int32

	changeSubs []ChangeFunc
	endSubs    []EndFunc
}

// New creates an engine with the given tuning. The seed drives spawn
// randomness; pass a time-based seed for normal play.
func New(cfg config.CatchConfig, seed int64) *Engine {
	// The drop-time floor guards the division in the motion step; a config
	// without one gets the reference floor.
	if cfg.Timing.MinDropSecs <= 0 {
		cfg.Timing.MinDropSecs = 0.5
	}
	if cfg.Progression.InitialLevel < 1 {
		cfg.Progression.InitialLevel = 1
	}

	e := &Engine{
		cfg: cfg,
		sp:  newSpawner(cfg.Spawn, seed),
	}
	e.basket.Store(int32(ZoneCenter))
	e.level = cfg.Progression.InitialLevel
	e.dropTime = dropTimeForLevel(cfg.Timing, e.level)
	return e
}

// dropTimeForLevel is the difficulty ramp: fall time shrinks linearly with
// level and never goes below the floor.
func dropTimeForLevel(t config.CatchTiming, level int) float64 {
	d := t.BaseDropSecs - float64(level-1)*t.DropStepSecs
	if d < t.MinDropSecs {
		return t.MinDropSecs
	}
	return d
}

// Start resets all session state, records nowMs as the simulation clock
// origin, schedules the first spawn and activates the engine. The basket
// lane is deliberately not reset: the latest classified lane stays
// authoritative across restarts.
func (e *Engine) Start(nowMs int64) {
	e.score = 0
	e.level = e.cfg.Progression.InitialLevel
	e.misses = 0
	e.levelTime = 0
	e.dropTime = dropTimeForLevel(e.cfg.Timing, e.level)
	e.items = e.items[:0]
	e.lastTickMs = nowMs
	e.sp.reset(nowMs, e.dropTime)
	e.active = true
}

// Stop deactivates the engine. Idempotent; no other state changes.
func (e *Engine) Stop() {
	e.active = false
}

// SetBasketZone moves the basket. Invalid zones are silently ignored.
func (e *Engine) SetBasketZone(z Zone) {
	if !z.Valid() {
		return
	}
	e.basket.Store(int32(z))
}

// SetBasketLabel moves the basket from a raw classifier label.
// Unrecognized labels are silently ignored and the previous lane retained.
func (e *Engine) SetBasketLabel(label string) {
	if z, ok := ParseZone(label); ok {
		e.basket.Store(int32(z))
	}
}

// OnChange registers a score/level/miss subscriber.
func (e *Engine) OnChange(fn ChangeFunc) {
	e.changeSubs = append(e.changeSubs, fn)
}

// OnGameEnd registers a game-over subscriber.
func (e *Engine) OnGameEnd(fn EndFunc) {
	e.endSubs = append(e.endSubs, fn)
}

// Update advances the simulation to nowMs. No-op while inactive.
//
// Order matters: a due level-up lands before spawning and motion so the new
// difficulty applies within the same tick, and resolution runs after motion
// so catch/miss decisions use the positions just computed.
func (e *Engine) Update(nowMs int64) {
	if !e.active {
		return
	}

	dt := float64(nowMs-e.lastTickMs) / 1000.0
	if dt < 0 {
		dt = 0
	}
	e.lastTickMs = nowMs

	// 1. Level timer
	if e.cfg.Progression.Enabled {
		e.levelTime += dt
		if e.levelTime >= e.cfg.Timing.LevelDurationSecs {
			e.levelUp()
		}
	}

	// 2. Spawn check
	if e.sp.due(nowMs) {
		e.items = append(e.items, e.sp.spawn(nowMs, e.dropTime))
	}

	// 3. Motion: constant fall speed, full height in dropTime seconds
	for i := range e.items {
		e.items[i].Y += dt / e.dropTime
	}

	// 4. Resolution
	if e.resolve() {
		return // terminal, leave remaining items untouched
	}

	// 5. Garbage collection
	e.collect()
}

func (e *Engine) levelUp() {
	e.level++
	e.levelTime = 0
	e.dropTime = dropTimeForLevel(e.cfg.Timing, e.level)
	e.notifyChange()
}

// resolve evaluates catches and misses for every live item. Items in the
// same tick are independent; there is no priority among them. Returns true
// when the game ended during resolution.
func (e *Engine) resolve() bool {
	basket := e.BasketZone()

	for i := range e.items {
		it := &e.items[i]
		if !it.live() {
			continue
		}

		// Window exited: fruits count as a miss, bombs are forgiven.
		if it.Y >= e.cfg.Rules.CatchWindowBottom {
			it.Resolved = true
			if !it.Kind.IsFruit() {
				continue
			}
			e.misses++
			e.notifyChange()
			if e.misses >= e.cfg.Rules.MaxMisses {
				e.end(ReasonFruitsMissed)
				return true
			}
			continue
		}

		// Inside the catch window and lane-matched: a catch. A mismatched
		// item is left alone to be re-evaluated while still in the window.
		if it.Y >= e.cfg.Rules.CatchWindowTop && it.Zone == basket {
			it.Caught = true
			if it.Kind == KindBomb {
				e.end(ReasonBombHit)
				return true
			}
			e.score += e.reward(it.Kind)
			e.notifyChange()
		}
	}
	return false
}

// collect drops caught items and items that fell past the despawn line.
func (e *Engine) collect() {
	kept := e.items[:0]
	for _, it := range e.items {
		if it.Caught || it.Y > e.cfg.Rules.DespawnY {
			continue
		}
		kept = append(kept, it)
	}
	e.items = kept
}

func (e *Engine) reward(k Kind) int {
	switch k {
	case KindApple:
		return e.cfg.Scoring.Apple
	case KindPear:
		return e.cfg.Scoring.Pear
	case KindOrange:
		return e.cfg.Scoring.Orange
	default:
		return 0
	}
}

func (e *Engine) notifyChange() {
	for _, fn := range e.changeSubs {
		fn(e.score, e.level, e.misses)
	}
}

// end transitions to the terminal state and fires the game-end
// notification. Update no-ops afterwards until Start is called again.
func (e *Engine) end(reason string) {
	e.active = false
	for _, fn := range e.endSubs {
		fn(e.score, e.level, reason)
	}
}

// Active reports whether the simulation advances on tick.
func (e *Engine) Active() bool { return e.active }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Misses returns how many fruits have been missed this session.
func (e *Engine) Misses() int { return e.misses }

// BasketZone returns the lane the basket currently occupies.
func (e *Engine) BasketZone() Zone {
	return Zone(e.basket.Load())
}

// DropTime returns the current full-height fall time in seconds.
func (e *Engine) DropTime() float64 { return e.dropTime }

// LevelTime returns seconds elapsed in the current level.
func (e *Engine) LevelTime() float64 { return e.levelTime }

// Items returns a copy of the live item collection, in spawn order.
func (e *Engine) Items() []Item {
	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}
