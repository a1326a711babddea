package risk

import (
	"testing"

	"healthscope/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreBaseValues(t *testing.T) {
	// No risk factors and age under 36 leaves every category at its base.
	answers := models.IntakeAnswers{Age: 30}

	scores := Score(answers)

	assert.Equal(t, 10, scores.Cardiovascular)
	assert.Equal(t, 5, scores.Diabetes)
	assert.Equal(t, 15, scores.Cancer)
	assert.Equal(t, 8, scores.Mental)
}

func TestScoreIsPure(t *testing.T) {
	answers := models.IntakeAnswers{
		Age:     55,
		Smoking: models.SmokingFormer,
		Diet:    models.DietPoor,
	}

	first := Score(answers)
	second := Score(answers)

	assert.Equal(t, first, second)
}

func TestScoreHighRiskScenario(t *testing.T) {
	answers := models.IntakeAnswers{
		Age:           55,
		HeightCm:      175,
		WeightKg:      95,
		FamilyHistory: models.FamilyHistory{HeartDisease: true},
		Smoking:       models.SmokingCurrent,
		Exercise:      models.ExerciseNone,
		Diet:          models.DietPoor,
		Stress:        models.StressSevere,
		Sleep:         models.SleepPoor,
	}

	scores := Score(answers)

	// The raw cardiovascular sum is well past the cap.
	assert.Equal(t, MaxCardiovascular, scores.Cardiovascular)
	// 5 base + 10 age + 15 no exercise + 12 poor diet + 20 BMI>30
	assert.Equal(t, 62, scores.Diabetes)
	// 15 base + 12 age + 30 current smoker
	assert.Equal(t, 57, scores.Cancer)
	// 8 base + 10 no exercise + 20 stress + 15 poor sleep
	assert.Equal(t, 53, scores.Mental)
}

func TestScoreNeverExceedsCaps(t *testing.T) {
	answers := models.IntakeAnswers{
		Age:      80,
		HeightCm: 160,
		WeightKg: 120,
		FamilyHistory: models.FamilyHistory{
			HeartDisease: true,
			Diabetes:     true,
			Cancer:       true,
			Stroke:       true,
			MentalHealth: true,
		},
		Smoking:  models.SmokingCurrent,
		Alcohol:  models.AlcoholHeavy,
		Exercise: models.ExerciseNone,
		Diet:     models.DietPoor,
		Stress:   models.StressSevere,
		Sleep:    models.SleepPoor,
	}

	scores := Score(answers)

	assert.Equal(t, MaxCardiovascular, scores.Cardiovascular)
	assert.Equal(t, MaxDiabetes, scores.Diabetes)
	assert.Equal(t, MaxCancer, scores.Cancer)
	assert.Equal(t, MaxMental, scores.Mental)
}

func TestScoreFloorsAtZero(t *testing.T) {
	// Protective answers can push a low base negative; the floor holds.
	answers := models.IntakeAnswers{
		Age:      25,
		Exercise: models.ExerciseHigh,
		Diet:     models.DietExcellent,
	}

	scores := Score(answers)

	// diabetes: 5 - 10 - 8 = -13 before the floor
	assert.Equal(t, 0, scores.Diabetes)
	assert.Equal(t, 0, scores.Cardiovascular) // 10 - 8 - 5 = -3
	assert.GreaterOrEqual(t, scores.Mental, 0)
}

func TestScoreBMIBrackets(t *testing.T) {
	obese := models.IntakeAnswers{HeightCm: 170, WeightKg: 87} // BMI ~30.1
	scores := Score(obese)
	assert.Equal(t, 10+15, scores.Cardiovascular)
	assert.Equal(t, 5+20, scores.Diabetes)

	overweight := models.IntakeAnswers{HeightCm: 170, WeightKg: 80} // BMI ~27.7
	scores = Score(overweight)
	assert.Equal(t, 10+8, scores.Cardiovascular)
	assert.Equal(t, 5+10, scores.Diabetes)
}

func TestScoreIgnoresBMIWithoutBothMeasurements(t *testing.T) {
	heightOnly := models.IntakeAnswers{HeightCm: 170}
	weightOnly := models.IntakeAnswers{WeightKg: 120}

	assert.Equal(t, Score(models.IntakeAnswers{}), Score(heightOnly))
	assert.Equal(t, Score(models.IntakeAnswers{}), Score(weightOnly))
}

func TestScoreAgeBrackets(t *testing.T) {
	middle := Score(models.IntakeAnswers{Age: 40})
	assert.Equal(t, 18, middle.Cardiovascular)
	assert.Equal(t, 10, middle.Diabetes)
	assert.Equal(t, 21, middle.Cancer)
	assert.Equal(t, 8, middle.Mental) // age never touches mental

	older := Score(models.IntakeAnswers{Age: 51})
	assert.Equal(t, 25, older.Cardiovascular)
	assert.Equal(t, 15, older.Diabetes)
	assert.Equal(t, 27, older.Cancer)
}
