// Package config provides YAML-based game configuration loading and
// difficulty presets for the pose game.
package config

// CatchConfig contains all tunables for the catch game.
type CatchConfig struct {
	Timing      CatchTiming      `yaml:"timing"`
	Spawn       CatchSpawn       `yaml:"spawn"`
	Scoring     CatchScoring     `yaml:"scoring"`
	Rules       CatchRules       `yaml:"rules"`
	Progression CatchProgression `yaml:"progression"`
}

// CatchTiming defines the level clock and the fall-speed ramp. Drop time is
// the seconds an item takes to fall the full normalized height; it shrinks
// by StepSecs per level down to MinSecs.
type CatchTiming struct {
	LevelDurationSecs float64 `yaml:"level_duration_secs"`
	BaseDropSecs      float64 `yaml:"base_drop_secs"`
	DropStepSecs      float64 `yaml:"drop_step_secs"`
	MinDropSecs       float64 `yaml:"min_drop_secs"`
}

// CatchSpawn defines spawn cadence and the item kind distribution.
// The next spawn interval is drawn uniformly from
// [MinIntervalFrac, MaxIntervalFrac) of the current drop time, so item
// density stays roughly constant as fall speed increases.
type CatchSpawn struct {
	MinIntervalFrac float64 `yaml:"min_interval_frac"`
	MaxIntervalFrac float64 `yaml:"max_interval_frac"`
	BombWeight      float64 `yaml:"bomb_weight"`
	AppleWeight     float64 `yaml:"apple_weight"`
	PearWeight      float64 `yaml:"pear_weight"`
	OrangeWeight    float64 `yaml:"orange_weight"`
}

// CatchScoring defines per-kind catch rewards.
type CatchScoring struct {
	Apple  int `yaml:"apple"`
	Pear   int `yaml:"pear"`
	Orange int `yaml:"orange"`
}

// CatchRules defines the normalized catch geometry and the loss condition.
type CatchRules struct {
	CatchWindowTop    float64 `yaml:"catch_window_top"`
	CatchWindowBottom float64 `yaml:"catch_window_bottom"`
	DespawnY          float64 `yaml:"despawn_y"`
	MaxMisses         int     `yaml:"max_misses"`
}

// CatchProgression controls level advancement.
type CatchProgression struct {
	Enabled      bool `yaml:"enabled"`
	InitialLevel int  `yaml:"initial_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return ok=false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// ApplyCatchPreset modifies the config based on a difficulty preset.
// easy slows the ramp, hard starts several levels in, fixed freezes the
// level at its initial value.
func ApplyCatchPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Progression.Enabled = true
		cfg.Progression.InitialLevel = 1
		cfg.Timing.DropStepSecs = 0.15
	case DifficultyNormal:
		cfg.Progression.Enabled = true
		cfg.Progression.InitialLevel = 1
	case DifficultyHard:
		cfg.Progression.Enabled = true
		cfg.Progression.InitialLevel = 4
	case DifficultyFixed:
		cfg.Progression.Enabled = false
	}
}
