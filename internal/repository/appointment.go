package repository

import (
	"context"
	"sort"
	"sync"

	"healthscope/internal/models"
)

// AppointmentStore keeps booked appointments per user.
type AppointmentStore struct {
	mu     sync.RWMutex
	byUser map[int][]models.Appointment
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{byUser: make(map[int][]models.Appointment)}
}

func (s *AppointmentStore) Create(ctx context.Context, appt models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[appt.UserID] = append(s.byUser[appt.UserID], appt)
	return nil
}

// ListByUser returns the user's appointments ordered by date.
func (s *AppointmentStore) ListByUser(ctx context.Context, userID int) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appts := make([]models.Appointment, len(s.byUser[userID]))
	copy(appts, s.byUser[userID])
	sort.Slice(appts, func(i, j int) bool { return appts[i].Date.Before(appts[j].Date) })
	return appts, nil
}

func (s *AppointmentStore) DeleteForUser(ctx context.Context, userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}
