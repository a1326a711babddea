package models

import (
	"strconv"
	"strings"
)

// Enumerated lifestyle answers. Values match the questionnaire option
// values exactly; anything else is treated as unanswered.
const (
	SmokingNever   = "never"
	SmokingFormer  = "former"
	SmokingCurrent = "current"

	AlcoholNone     = "none"
	AlcoholLight    = "light"
	AlcoholModerate = "moderate"
	AlcoholHeavy    = "heavy"

	ExerciseNone     = "none"
	ExerciseLight    = "light"
	ExerciseModerate = "moderate"
	ExerciseHigh     = "high"

	DietPoor      = "poor"
	DietFair      = "fair"
	DietGood      = "good"
	DietExcellent = "excellent"

	StressLow      = "low"
	StressModerate = "moderate"
	StressHigh     = "high"
	StressSevere   = "severe"

	SleepPoor      = "poor"
	SleepFair      = "fair"
	SleepGood      = "good"
	SleepExcellent = "excellent"
)

// FamilyHistory holds the family-history checkboxes from step two of the
// questionnaire.
type FamilyHistory struct {
	HeartDisease bool `json:"heartDisease"`
	Diabetes     bool `json:"diabetes"`
	Cancer       bool `json:"cancer"`
	Stroke       bool `json:"stroke"`
	MentalHealth bool `json:"mentalHealth"`
}

// Flagged returns the names of the conditions that were checked, in the
// order the form presents them. The prediction service and the receipt
// email both expect the list flattened to a comma-joined string.
func (f FamilyHistory) Flagged() []string {
	var flags []string
	if f.HeartDisease {
		flags = append(flags, "heartDisease")
	}
	if f.Diabetes {
		flags = append(flags, "diabetes")
	}
	if f.Cancer {
		flags = append(flags, "cancer")
	}
	if f.Stroke {
		flags = append(flags, "stroke")
	}
	if f.MentalHealth {
		flags = append(flags, "mentalHealth")
	}
	return flags
}

// IntakeAnswers is the structured questionnaire response submitted for
// scoring. It is created once per submission and never mutated.
type IntakeAnswers struct {
	Age           int           `json:"age"`
	Gender        string        `json:"gender"`
	HeightCm      float64       `json:"height"`
	WeightKg      float64       `json:"weight"`
	FamilyHistory FamilyHistory `json:"familyHistory"`
	Smoking       string        `json:"smoking"`
	Alcohol       string        `json:"alcohol"`
	Exercise      string        `json:"exercise"`
	Diet          string        `json:"diet"`
	Stress        string        `json:"stress"`
	Sleep         string        `json:"sleep"`

	// Free-text medical history. Carried through untouched, never scored.
	Conditions  string `json:"conditions"`
	Medications string `json:"medications"`
	Allergies   string `json:"allergies"`
}

// ParseIntakeAnswers builds an IntakeAnswers from the raw key/value answers
// accumulated across the questionnaire steps. Malformed or missing numeric
// fields degrade to zero instead of erroring; scoring treats zero as absent.
func ParseIntakeAnswers(raw map[string]string) IntakeAnswers {
	a := IntakeAnswers{
		Gender:      raw["gender"],
		Smoking:     raw["smoking"],
		Alcohol:     raw["alcohol"],
		Exercise:    raw["exercise"],
		Diet:        raw["diet"],
		Stress:      raw["stress"],
		Sleep:       raw["sleep"],
		Conditions:  raw["conditions"],
		Medications: raw["medications"],
		Allergies:   raw["allergies"],
	}

	if age, err := strconv.Atoi(strings.TrimSpace(raw["age"])); err == nil && age > 0 {
		a.Age = age
	}
	if h, err := strconv.ParseFloat(strings.TrimSpace(raw["height"]), 64); err == nil && h > 0 {
		a.HeightCm = h
	}
	if w, err := strconv.ParseFloat(strings.TrimSpace(raw["weight"]), 64); err == nil && w > 0 {
		a.WeightKg = w
	}

	a.FamilyHistory = FamilyHistory{
		HeartDisease: raw["familyHistory.heartDisease"] == "true",
		Diabetes:     raw["familyHistory.diabetes"] == "true",
		Cancer:       raw["familyHistory.cancer"] == "true",
		Stroke:       raw["familyHistory.stroke"] == "true",
		MentalHealth: raw["familyHistory.mentalHealth"] == "true",
	}

	return a
}

// RiskScoreSet holds the four heuristic category scores produced by one
// assessment. Each value is an integer percentage, not a calibrated
// probability.
type RiskScoreSet struct {
	Cardiovascular int `json:"cardiovascular"`
	Diabetes       int `json:"diabetes"`
	Cancer         int `json:"cancer"`
	Mental         int `json:"mental"`
}

// IsZero reports whether no assessment has populated the set.
func (s RiskScoreSet) IsZero() bool {
	return s == RiskScoreSet{}
}

// TrendSet holds the per-category trend indicators ("improving", "stable"
// or "worsening") derived from the same answers as the scores.
type TrendSet struct {
	Cardiovascular string `json:"cardiovascular"`
	Diabetes       string `json:"diabetes"`
	Cancer         string `json:"cancer"`
	Mental         string `json:"mental"`
}
