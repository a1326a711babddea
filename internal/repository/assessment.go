package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AssessmentState tracks a user's progress through the intake steps.
type AssessmentState struct {
	ID          string
	UserID      int
	StepIndex   int
	Answers     map[string]string
	IsComplete  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt time.Time
}

// AssessmentStore keeps at most one active questionnaire state per user.
type AssessmentStore struct {
	mu     sync.Mutex
	byUser map[int]*AssessmentState
}

func NewAssessmentStore() *AssessmentStore {
	return &AssessmentStore{byUser: make(map[int]*AssessmentState)}
}

// GetOrCreate returns the user's in-progress state, starting a fresh one
// if none exists or the last one was completed.
func (s *AssessmentStore) GetOrCreate(ctx context.Context, userID int) (*AssessmentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.byUser[userID]
	if !ok || state.IsComplete {
		now := time.Now()
		state = &AssessmentState{
			ID:        uuid.NewString(),
			UserID:    userID,
			Answers:   make(map[string]string),
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.byUser[userID] = state
	}

	return copyState(state), nil
}

// SaveStep merges the step's answers into the state and moves the cursor
// to nextIndex.
func (s *AssessmentStore) SaveStep(ctx context.Context, userID int, answers map[string]string, nextIndex int) (*AssessmentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.byUser[userID]
	if !ok || state.IsComplete {
		return nil, ErrNotFound
	}
	for k, v := range answers {
		state.Answers[k] = v
	}
	state.StepIndex = nextIndex
	state.UpdatedAt = time.Now()

	return copyState(state), nil
}

// Regress moves the cursor back one step without touching saved answers.
func (s *AssessmentStore) Regress(ctx context.Context, userID int) (*AssessmentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.byUser[userID]
	if !ok || state.IsComplete {
		return nil, ErrNotFound
	}
	if state.StepIndex > 0 {
		state.StepIndex--
	}
	state.UpdatedAt = time.Now()

	return copyState(state), nil
}

// Complete marks the state finished and returns the accumulated answers.
func (s *AssessmentStore) Complete(ctx context.Context, userID int) (*AssessmentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.byUser[userID]
	if !ok || state.IsComplete {
		return nil, ErrNotFound
	}
	now := time.Now()
	state.IsComplete = true
	state.CompletedAt = now
	state.UpdatedAt = now

	return copyState(state), nil
}

// DeleteForUser drops any questionnaire state the user has, completed or
// not. Called when the session ends.
func (s *AssessmentStore) DeleteForUser(ctx context.Context, userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}

func copyState(state *AssessmentState) *AssessmentState {
	out := *state
	out.Answers = make(map[string]string, len(state.Answers))
	for k, v := range state.Answers {
		out.Answers[k] = v
	}
	return &out
}
