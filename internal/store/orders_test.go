package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolovaya/canteen-api/internal/models"
)

func TestOrderStoreAssignsDenseIDs(t *testing.T) {
	s := NewOrderStore()

	first := s.Add(models.Order{StudentID: 1, Dish: "Суп", Date: "2026-09-01"})
	second := s.Add(models.Order{StudentID: 2, Dish: "Пюре", Date: "2026-09-01"})

	assert.Equal(t, int64(0), first.ID)
	assert.Equal(t, int64(1), second.ID)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Суп", all[0].Dish)
}

func TestOrderStoreByDate(t *testing.T) {
	s := NewOrderStore()
	s.Add(models.Order{StudentID: 1, Date: "2026-09-01"})
	s.Add(models.Order{StudentID: 2, Date: "2026-08-31"})

	todays := s.ByDate("2026-09-01")
	require.Len(t, todays, 1)
	assert.Equal(t, int64(1), todays[0].StudentID)
}

func TestOrderStoreMarkGivenBounds(t *testing.T) {
	s := NewOrderStore()
	s.Add(models.Order{StudentID: 1, Date: "2026-09-01"})

	assert.False(t, s.MarkGiven(-1))
	assert.False(t, s.MarkGiven(1))
	assert.True(t, s.MarkGiven(0))

	all := s.All()
	require.Len(t, all, 1)
	assert.True(t, all[0].Given)
}

func TestOrderStoreStudentIDsByDate(t *testing.T) {
	s := NewOrderStore()
	s.Add(models.Order{StudentID: 7, Date: "2026-09-01"})
	s.Add(models.Order{StudentID: 3, Date: "2026-09-01"})
	s.Add(models.Order{StudentID: 7, Date: "2026-09-01"})
	s.Add(models.Order{StudentID: 9, Date: "2026-08-31"})
	s.Add(models.Order{StudentID: 0, Date: "2026-09-01"})

	assert.Equal(t, []int64{3, 7}, s.StudentIDsByDate("2026-09-01"))
}

func TestOrderStoreClearResetsCounter(t *testing.T) {
	s := NewOrderStore()
	s.Add(models.Order{Dish: "Суп"})
	s.Add(models.Order{Dish: "Борщ"})

	s.Clear()
	assert.Empty(t, s.All())

	total, dishes := s.Stats()
	assert.Equal(t, 0, total)
	assert.Empty(t, dishes)

	again := s.Add(models.Order{Dish: "Плов"})
	assert.Equal(t, int64(0), again.ID)
}

func TestOrderStoreStats(t *testing.T) {
	s := NewOrderStore()
	s.Add(models.Order{Dish: "Суп"})
	s.Add(models.Order{Dish: "Суп"})
	s.Add(models.Order{Dish: "Плов"})

	total, dishes := s.Stats()
	assert.Equal(t, 3, total)
	assert.Equal(t, map[string]int{"Суп": 2, "Плов": 1}, dishes)
}
