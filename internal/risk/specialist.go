package risk

import "healthscope/internal/models"

// Specialist is one of the five fixed clinician records a submission can
// be routed to.
type Specialist struct {
	Name          string `json:"name"`
	SpecialtyType string `json:"specialtyType"`
	MatchTag      string `json:"matchTag"`
}

var specialists = []Specialist{
	{Name: "Sarah Johnson", SpecialtyType: "Cardiologist", MatchTag: "heart"},
	{Name: "Michael Chen", SpecialtyType: "Endocrinologist", MatchTag: "diabetes"},
	{Name: "Emily Davis", SpecialtyType: "Oncologist", MatchTag: "cancer"},
	{Name: "Robert Wilson", SpecialtyType: "Internal Medicine", MatchTag: "general"},
	{Name: "Lisa Anderson", SpecialtyType: "Preventive Medicine", MatchTag: "lifestyle"},
}

// AssignSpecialist routes the answers to one specialist. The rules are an
// ordered chain: the first match wins.
func AssignSpecialist(a models.IntakeAnswers) Specialist {
	switch {
	case a.FamilyHistory.HeartDisease || a.Smoking == models.SmokingCurrent:
		return specialists[0] // Cardiologist
	case a.FamilyHistory.Diabetes || a.Diet == models.DietPoor:
		return specialists[1] // Endocrinologist
	case a.FamilyHistory.Cancer:
		return specialists[2] // Oncologist
	case a.Exercise == models.ExerciseNone || a.Stress == models.StressHigh:
		return specialists[4] // Preventive Medicine
	default:
		return specialists[3] // Internal Medicine
	}
}
