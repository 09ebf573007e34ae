package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the default catch game configuration.
// These are the reference tuning values; the embedded YAML carries the same
// numbers for users who want a starting point to edit.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Timing: CatchTiming{
			LevelDurationSecs: 20.0,
			BaseDropSecs:      2.0,
			DropStepSecs:      0.2,
			MinDropSecs:       0.5,
		},
		Spawn: CatchSpawn{
			MinIntervalFrac: 0.6,
			MaxIntervalFrac: 0.8,
			BombWeight:      0.20,
			AppleWeight:     0.40,
			PearWeight:      0.25,
			OrangeWeight:    0.15,
		},
		Scoring: CatchScoring{
			Apple:  100,
			Pear:   150,
			Orange: 200,
		},
		Rules: CatchRules{
			CatchWindowTop:    0.85,
			CatchWindowBottom: 1.0,
			DespawnY:          1.2,
			MaxMisses:         2,
		},
		Progression: CatchProgression{
			Enabled:      true,
			InitialLevel: 1,
		},
	}
}
