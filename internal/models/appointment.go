package models

import "time"

// Appointment is a booked consultation slot. Like every other record in
// the service it lives only for the duration of the session.
type Appointment struct {
	ID         string    `json:"id"`
	UserID     int       `json:"-"`
	DoctorID   string    `json:"doctorId"`
	DoctorName string    `json:"doctorName"`
	Specialty  string    `json:"specialty"`
	Date       time.Time `json:"date"`
	TimeSlot   string    `json:"timeSlot"`
	Type       string    `json:"type"`
	Notes      string    `json:"notes,omitempty"`
	BookedAt   time.Time `json:"bookedAt"`
}
