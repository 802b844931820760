package cricket

import "github.com/vovakirdan/cricket-arcade/internal/config"

// ComboMultiplier returns the multiplier for a consecutive-hit streak. Tiers
// are ordered highest streak first; a streak below every tier scores 1x.
func ComboMultiplier(tiers []config.ComboTier, streak int) int {
	for _, t := range tiers {
		if streak >= t.Streak {
			return t.Multiplier
		}
	}
	return 1
}

// NextMilestone returns the lowest milestone that score has reached but the
// watermark has not. Only one milestone is reported per call, so a score
// that leaps past two thresholds celebrates them on successive scoring events.
func NextMilestone(milestones []config.Milestone, score, watermark int) (config.Milestone, bool) {
	for _, m := range milestones {
		if score >= m.Score && watermark < m.Score {
			return m, true
		}
	}
	return config.Milestone{}, false
}
