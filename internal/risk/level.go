package risk

import "healthscope/internal/models"

// Coarse risk labels.
const (
	LevelLow      = "Low"
	LevelModerate = "Moderate"
	LevelHigh     = "High"
)

// Trend indicators.
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendWorsening = "worsening"
)

// LevelFor buckets a single category score into a coarse label.
func LevelFor(score int) string {
	switch {
	case score > 50:
		return LevelHigh
	case score > 25:
		return LevelModerate
	default:
		return LevelLow
	}
}

// OverallLevel derives the profile-wide risk label from the highest
// category score.
func OverallLevel(s models.RiskScoreSet) string {
	max := s.Cardiovascular
	if s.Diabetes > max {
		max = s.Diabetes
	}
	if s.Cancer > max {
		max = s.Cancer
	}
	if s.Mental > max {
		max = s.Mental
	}
	return LevelFor(max)
}

// Trends derives a per-category trend indicator from the answers. A
// category worsens when its dominant aggravating answer is present and
// improves when its strongest protective answer is, worsening taking
// precedence.
func Trends(a models.IntakeAnswers) models.TrendSet {
	t := models.TrendSet{
		Cardiovascular: TrendStable,
		Diabetes:       TrendStable,
		Cancer:         TrendStable,
		Mental:         TrendStable,
	}

	switch {
	case a.Smoking == models.SmokingCurrent:
		t.Cardiovascular = TrendWorsening
	case a.Exercise == models.ExerciseHigh:
		t.Cardiovascular = TrendImproving
	}

	switch {
	case a.Diet == models.DietPoor:
		t.Diabetes = TrendWorsening
	case a.Exercise == models.ExerciseHigh:
		t.Diabetes = TrendImproving
	}

	switch a.Smoking {
	case models.SmokingCurrent:
		t.Cancer = TrendWorsening
	case models.SmokingNever:
		t.Cancer = TrendImproving
	}

	switch {
	case a.Stress == models.StressHigh || a.Stress == models.StressSevere:
		t.Mental = TrendWorsening
	case a.Exercise == models.ExerciseHigh:
		t.Mental = TrendImproving
	}

	return t
}
