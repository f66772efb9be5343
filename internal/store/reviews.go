package store

import (
	"sync"

	"github.com/stolovaya/canteen-api/internal/models"
)

// ReviewStore owns the volatile review sequence. Append-only; emptied only
// by the admin clear.
type ReviewStore struct {
	mu      sync.Mutex
	reviews []models.Review
}

// NewReviewStore returns an empty review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{}
}

// Add appends a review.
func (s *ReviewStore) Add(r models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, r)
}

// All returns a copy of the full sequence in insertion order.
func (s *ReviewStore) All() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// ByStudent returns the reviews recorded for a student.
func (s *ReviewStore) ByStudent(studentID int64) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Review, 0)
	for _, r := range s.reviews {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

// Clear drops every review.
func (s *ReviewStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = nil
}
