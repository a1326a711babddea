// Package repository holds the in-memory stores backing the service.
// Nothing here outlives the process: the product keeps all state in the
// session, so the stores are plain maps guarded by mutexes. Every method
// returns copies; callers never share a pointer into a store.
package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"healthscope/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

// UserStore keeps the registered profiles for the lifetime of the process.
type UserStore struct {
	mu      sync.RWMutex
	nextID  int
	byID    map[int]*models.User
	byEmail map[string]int
}

func NewUserStore() *UserStore {
	return &UserStore{
		nextID:  1,
		byID:    make(map[int]*models.User),
		byEmail: make(map[string]int),
	}
}

// Create registers a new profile. New profiles start with zeroed risk
// metrics and no completed assessment.
func (s *UserStore) Create(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	user := &models.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		IsNewUser: true,
		CreatedAt: time.Now(),
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, ErrEmailTaken
	}
	user.ID = s.nextID
	s.nextID++
	s.byID[user.ID] = user
	s.byEmail[email] = user.ID

	out := *user
	return &out, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	out := *s.byID[id]
	return &out, nil
}

func (s *UserStore) GetByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *user
	return &out, nil
}

// UpdateInfo replaces the editable profile fields.
func (s *UserStore) UpdateInfo(ctx context.Context, id int, firstName, lastName, phone, dateOfBirth, emergencyContact, medicalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	user.FirstName = firstName
	user.LastName = lastName
	user.Phone = phone
	user.DateOfBirth = dateOfBirth
	user.EmergencyContact = emergencyContact
	user.MedicalID = medicalID
	return nil
}

func (s *UserStore) UpdatePassword(ctx context.Context, id int, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	return user.SetPassword(newPassword)
}

func (s *UserStore) UpdateNotificationPreferences(ctx context.Context, id int, emailNotifications bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	user.EmailNotifications = emailNotifications
	return nil
}

// ApplyAssessment records a completed assessment on the profile.
func (s *UserStore) ApplyAssessment(ctx context.Context, id int, scores models.RiskScoreSet, trends models.TrendSet, level string, completedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	user.IsNewUser = false
	user.HasCompletedAssessment = true
	user.RiskMetrics = scores
	user.RiskTrends = trends
	user.RiskLevel = level
	user.LastAssessmentDate = completedAt
	return nil
}

// Delete removes the profile entirely. Called on account deletion and on
// logout, which destroys the session-scoped state.
func (s *UserStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.byEmail, user.Email)
	delete(s.byID, id)
	return nil
}
