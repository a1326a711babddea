package repository

import (
	"context"
	"sync"

	"healthscope/internal/models"
)

// TrackerStore keeps self-reported metric readings per user, newest last.
type TrackerStore struct {
	mu     sync.RWMutex
	byUser map[int][]models.Reading
}

func NewTrackerStore() *TrackerStore {
	return &TrackerStore{byUser: make(map[int][]models.Reading)}
}

func (s *TrackerStore) Append(ctx context.Context, reading models.Reading) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[reading.UserID] = append(s.byUser[reading.UserID], reading)
	return nil
}

func (s *TrackerStore) ListByUser(ctx context.Context, userID int) ([]models.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	readings := make([]models.Reading, len(s.byUser[userID]))
	copy(readings, s.byUser[userID])
	return readings, nil
}

// LastTwo returns the most recent and second most recent readings, for
// trend summaries. ok is false until at least two readings exist; a single
// reading has nothing to compare against.
func (s *TrackerStore) LastTwo(ctx context.Context, userID int) (latest, previous models.Reading, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	readings := s.byUser[userID]
	if len(readings) < 2 {
		return models.Reading{}, models.Reading{}, false
	}
	return readings[len(readings)-1], readings[len(readings)-2], true
}

func (s *TrackerStore) DeleteForUser(ctx context.Context, userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}
