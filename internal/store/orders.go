// Package store holds the process-lifetime state of the canteen: the order
// and review sequences and the menu catalog. None of it survives a restart.
// Each store guards its state with a mutex because Gin serves requests
// concurrently.
package store

import (
	"sort"
	"sync"

	"github.com/stolovaya/canteen-api/internal/models"
)

// OrderStore owns the volatile order sequence. IDs come from a counter that
// starts at 0 and advances with every insert; the sequence is append-only,
// so ids double as positions until Clear resets both.
type OrderStore struct {
	mu     sync.Mutex
	nextID int64
	orders []models.Order
}

// NewOrderStore returns an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Add assigns the next id to the order, appends it and returns the stored
// record.
func (s *OrderStore) Add(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextID
	s.nextID++
	s.orders = append(s.orders, o)
	return o
}

// All returns a copy of the full sequence in insertion order.
func (s *OrderStore) All() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// ByDate returns the orders stamped with the given calendar date.
func (s *OrderStore) ByDate(date string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.Date == date {
			out = append(out, o)
		}
	}
	return out
}

// ByStudent returns the orders recorded for a student.
func (s *OrderStore) ByStudent(studentID int64) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.StudentID == studentID {
			out = append(out, o)
		}
	}
	return out
}

// StudentIDsByDate returns the distinct positive student ids with an order
// on the given date, ascending.
func (s *OrderStore) StudentIDsByDate(date string) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{})
	for _, o := range s.orders {
		if o.Date == date && o.StudentID > 0 {
			seen[o.StudentID] = struct{}{}
		}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MarkGiven flags the order with the given id as handed out. It reports
// false when the id is outside the current sequence.
func (s *OrderStore) MarkGiven(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 0 || id >= int64(len(s.orders)) {
		return false
	}
	s.orders[id].Given = true
	return true
}

// Stats returns the order total and a dish-name frequency histogram.
func (s *OrderStore) Stats() (int, map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dishes := make(map[string]int)
	for _, o := range s.orders {
		dishes[o.Dish]++
	}
	return len(s.orders), dishes
}

// Clear drops every order and resets the id counter.
func (s *OrderStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = nil
	s.nextID = 0
}
