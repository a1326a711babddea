// Package risk implements the heuristic scoring behind the assessment:
// four additive category scores, a specialist match, per-category trends
// and the report delivery estimate. Everything here is a pure function of
// the intake answers.
package risk

import "healthscope/internal/models"

// Base scores each category starts from before any factor is applied.
const (
	baseCardiovascular = 10
	baseDiabetes       = 5
	baseCancer         = 15
	baseMental         = 8
)

// Per-category caps. A score never exceeds its cap no matter how many
// factors fire, and never drops below zero on protective answers.
const (
	MaxCardiovascular = 85
	MaxDiabetes       = 75
	MaxCancer         = 80
	MaxMental         = 70
)

// Score maps intake answers to the four category scores. It is total:
// unanswered fields simply contribute nothing.
func Score(a models.IntakeAnswers) models.RiskScoreSet {
	cardio := baseCardiovascular
	diabetes := baseDiabetes
	cancer := baseCancer
	mental := baseMental

	// Age factor
	switch {
	case a.Age > 50:
		cardio += 15
		diabetes += 10
		cancer += 12
	case a.Age > 35:
		cardio += 8
		diabetes += 5
		cancer += 6
	}

	// Family history factors
	if a.FamilyHistory.HeartDisease {
		cardio += 20
	}
	if a.FamilyHistory.Diabetes {
		diabetes += 25
	}
	if a.FamilyHistory.Cancer {
		cancer += 18
	}
	if a.FamilyHistory.Stroke {
		cardio += 15
	}
	if a.FamilyHistory.MentalHealth {
		mental += 15
	}

	// Lifestyle factors
	switch a.Smoking {
	case models.SmokingCurrent:
		cardio += 25
		cancer += 30
	case models.SmokingFormer:
		cardio += 10
		cancer += 12
	}

	if a.Alcohol == models.AlcoholHeavy {
		cardio += 15
		cancer += 10
	}

	switch a.Exercise {
	case models.ExerciseNone:
		cardio += 12
		diabetes += 15
		mental += 10
	case models.ExerciseHigh:
		cardio -= 8
		diabetes -= 10
		mental -= 5
	}

	switch a.Diet {
	case models.DietPoor:
		cardio += 10
		diabetes += 12
	case models.DietExcellent:
		cardio -= 5
		diabetes -= 8
	}

	if a.Stress == models.StressHigh || a.Stress == models.StressSevere {
		cardio += 12
		mental += 20
	}

	if a.Sleep == models.SleepPoor {
		cardio += 8
		mental += 15
	}

	// BMI factors, only when both measurements are present and positive.
	// Height arrives in centimeters.
	if a.HeightCm > 0 && a.WeightKg > 0 {
		heightM := a.HeightCm / 100
		bmi := a.WeightKg / (heightM * heightM)
		switch {
		case bmi > 30:
			cardio += 15
			diabetes += 20
		case bmi > 25:
			cardio += 8
			diabetes += 10
		}
	}

	return models.RiskScoreSet{
		Cardiovascular: clamp(cardio, MaxCardiovascular),
		Diabetes:       clamp(diabetes, MaxDiabetes),
		Cancer:         clamp(cancer, MaxCancer),
		Mental:         clamp(mental, MaxMental),
	}
}

func clamp(score, max int) int {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}
