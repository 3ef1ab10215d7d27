package pipeline

import "pickandtip/backend/internal/config"

// ThresholdLevels builds the standard none/low/medium/high level set over
// two cut points. "none" is exactly zero, medium always includes its upper
// cut point and high is strictly above it. inclusive controls the low cut
// point only: property-tax style levels are exclusive (low is (0, 0.5),
// medium [0.5, 1.5]), VAT style levels are inclusive (low is (0, 10],
// medium (10, 20]).
func ThresholdLevels(lowMax, mediumMax float64, inclusive bool) map[string]func(float64) bool {
	inLow := func(v float64) bool {
		if inclusive {
			return v <= lowMax
		}
		return v < lowMax
	}
	return map[string]func(float64) bool{
		config.LevelNone:   func(v float64) bool { return v == 0 },
		config.LevelLow:    func(v float64) bool { return v > 0 && inLow(v) },
		config.LevelMedium: func(v float64) bool { return v > 0 && !inLow(v) && v <= mediumMax },
		config.LevelHigh:   func(v float64) bool { return v > mediumMax },
	}
}

// ThresholdLevel classifies a value against the same cut points, for
// badge coloring. The returned name is one of the level constants.
func ThresholdLevel(v, lowMax, mediumMax float64, inclusive bool) string {
	levels := ThresholdLevels(lowMax, mediumMax, inclusive)
	switch {
	case levels[config.LevelNone](v):
		return config.LevelNone
	case levels[config.LevelLow](v):
		return config.LevelLow
	case levels[config.LevelMedium](v):
		return config.LevelMedium
	default:
		return config.LevelHigh
	}
}
