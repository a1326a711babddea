package risk

import (
	"testing"

	"healthscope/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAssignSpecialistPriority(t *testing.T) {
	// Heart disease history outranks diabetes history when both are set.
	answers := models.IntakeAnswers{
		FamilyHistory: models.FamilyHistory{HeartDisease: true, Diabetes: true},
	}
	assert.Equal(t, "Cardiologist", AssignSpecialist(answers).SpecialtyType)
}

func TestAssignSpecialist(t *testing.T) {
	tests := []struct {
		name    string
		answers models.IntakeAnswers
		want    string
	}{
		{
			name:    "current smoker routes to cardiology",
			answers: models.IntakeAnswers{Smoking: models.SmokingCurrent},
			want:    "Cardiologist",
		},
		{
			name:    "family diabetes routes to endocrinology",
			answers: models.IntakeAnswers{FamilyHistory: models.FamilyHistory{Diabetes: true}},
			want:    "Endocrinologist",
		},
		{
			name:    "poor diet routes to endocrinology",
			answers: models.IntakeAnswers{Diet: models.DietPoor},
			want:    "Endocrinologist",
		},
		{
			name:    "family cancer routes to oncology",
			answers: models.IntakeAnswers{FamilyHistory: models.FamilyHistory{Cancer: true}},
			want:    "Oncologist",
		},
		{
			name:    "no exercise routes to preventive medicine",
			answers: models.IntakeAnswers{Exercise: models.ExerciseNone},
			want:    "Preventive Medicine",
		},
		{
			name:    "high stress routes to preventive medicine",
			answers: models.IntakeAnswers{Stress: models.StressHigh},
			want:    "Preventive Medicine",
		},
		{
			name:    "no matching factor falls through to internal medicine",
			answers: models.IntakeAnswers{Age: 30, Exercise: models.ExerciseModerate},
			want:    "Internal Medicine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignSpecialist(tt.answers)
			assert.Equal(t, tt.want, got.SpecialtyType)
			assert.NotEmpty(t, got.Name)
			assert.NotEmpty(t, got.MatchTag)
		})
	}
}

func TestAssignSpecialistIsDeterministic(t *testing.T) {
	answers := models.IntakeAnswers{Diet: models.DietPoor, Stress: models.StressHigh}
	first := AssignSpecialist(answers)
	second := AssignSpecialist(answers)
	assert.Equal(t, first, second)
}
