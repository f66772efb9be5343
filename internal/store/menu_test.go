package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolovaya/canteen-api/internal/models"
)

func TestMenuStoreDay(t *testing.T) {
	s := NewMenuStore()

	day, ok := s.Day("Понедельник")
	require.True(t, ok)
	assert.Equal(t, []string{"Каша", "Омлет"}, day.Breakfast)
	assert.Equal(t, []string{"Суп", "Пюре"}, day.Lunch)

	_, ok = s.Day("Суббота")
	assert.False(t, ok)
}

func TestMenuStoreAddRemoveRoundTrip(t *testing.T) {
	s := NewMenuStore()

	require.NoError(t, s.Add("Вторник", models.MealLunch, "Компот"))
	day, _ := s.Day("Вторник")
	assert.Contains(t, day.Lunch, "Компот")

	require.NoError(t, s.Remove("Вторник", models.MealLunch, "Компот"))
	day, _ = s.Day("Вторник")
	assert.Equal(t, []string{"Борщ", "Плов"}, day.Lunch)
}

func TestMenuStoreRemoveAbsentDishIsNoop(t *testing.T) {
	s := NewMenuStore()

	require.NoError(t, s.Remove("Среда", models.MealBreakfast, "Пельмени"))
	day, _ := s.Day("Среда")
	assert.Equal(t, []string{"Сырники", "Овсянка"}, day.Breakfast)
}

func TestMenuStoreUnknownKeys(t *testing.T) {
	s := NewMenuStore()

	assert.ErrorIs(t, s.Add("Воскресенье", models.MealLunch, "Суп"), ErrUnknownMenuKey)
	assert.ErrorIs(t, s.Add("Понедельник", "dinner", "Суп"), ErrUnknownMenuKey)
	assert.ErrorIs(t, s.Remove("Воскресенье", models.MealLunch, "Суп"), ErrUnknownMenuKey)
}

func TestMenuStoreDayReturnsCopy(t *testing.T) {
	s := NewMenuStore()

	day, _ := s.Day("Пятница")
	day.Lunch[0] = "Шашлык"

	fresh, _ := s.Day("Пятница")
	assert.Equal(t, "Пицца", fresh.Lunch[0])
}
