package models

import "time"

// Reading is one day's worth of self-reported health metrics.
type Reading struct {
	ID            string    `json:"id"`
	UserID        int       `json:"-"`
	WeightKg      float64   `json:"weight,omitempty"`
	BloodPressure string    `json:"bloodPressure,omitempty"`
	HeartRate     int       `json:"heartRate,omitempty"`
	BloodSugar    float64   `json:"bloodSugar,omitempty"`
	Steps         int       `json:"steps,omitempty"`
	SleepHours    float64   `json:"sleep,omitempty"`
	WaterLiters   float64   `json:"water,omitempty"`
	RecordedAt    time.Time `json:"recordedAt"`
}

// MetricTrend summarizes how one tracked metric moved between the two most
// recent readings.
type MetricTrend struct {
	Metric    string  `json:"metric"`
	Latest    float64 `json:"latest"`
	Previous  float64 `json:"previous,omitempty"`
	Direction string  `json:"direction"` // up, down, steady
}
