package store

import (
	"errors"
	"sync"

	"github.com/stolovaya/canteen-api/internal/models"
)

// ErrUnknownMenuKey reports an add or remove against a weekday or meal slot
// the catalog does not carry.
var ErrUnknownMenuKey = errors.New("unknown menu day or meal")

// MenuStore is the static weekly menu. It is seeded with the default
// school-week catalog and mutated in place; a restart restores the
// defaults.
type MenuStore struct {
	mu   sync.RWMutex
	days map[string]*models.DayMenu
}

// NewMenuStore returns a menu seeded with the default week.
func NewMenuStore() *MenuStore {
	return &MenuStore{days: defaultWeek()}
}

func defaultWeek() map[string]*models.DayMenu {
	return map[string]*models.DayMenu{
		"Понедельник": {Breakfast: []string{"Каша", "Омлет"}, Lunch: []string{"Суп", "Пюре"}},
		"Вторник":     {Breakfast: []string{"Блины", "Йогурт"}, Lunch: []string{"Борщ", "Плов"}},
		"Среда":       {Breakfast: []string{"Сырники", "Овсянка"}, Lunch: []string{"Щи", "Макароны"}},
		"Четверг":     {Breakfast: []string{"Оладьи", "Творог"}, Lunch: []string{"Суп куриный", "Гречка"}},
		"Пятница":     {Breakfast: []string{"Круассан", "Яичница"}, Lunch: []string{"Пицца", "Овощной суп"}},
	}
}

// Day returns a copy of the menu for the given weekday. The second result
// is false for an unrecognised day.
func (s *MenuStore) Day(day string) (models.DayMenu, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.days[day]
	if !ok {
		return models.DayMenu{}, false
	}

	out := models.DayMenu{
		Breakfast: append([]string(nil), d.Breakfast...),
		Lunch:     append([]string(nil), d.Lunch...),
	}
	return out, true
}

// Add appends a dish to the list at (day, meal).
func (s *MenuStore) Add(day, meal, dish string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.slot(day, meal)
	if err != nil {
		return err
	}
	*list = append(*list, dish)
	return nil
}

// Remove deletes the first occurrence of dish at (day, meal). Removing an
// absent dish is a no-op.
func (s *MenuStore) Remove(day, meal, dish string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.slot(day, meal)
	if err != nil {
		return err
	}
	for i, d := range *list {
		if d == dish {
			*list = append((*list)[:i], (*list)[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MenuStore) slot(day, meal string) (*[]string, error) {
	d, ok := s.days[day]
	if !ok {
		return nil, ErrUnknownMenuKey
	}
	switch meal {
	case models.MealBreakfast:
		return &d.Breakfast, nil
	case models.MealLunch:
		return &d.Lunch, nil
	}
	return nil, ErrUnknownMenuKey
}
