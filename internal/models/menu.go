package models

// Meal slot identifiers used as keys in the menu catalog.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
)

// DayMenu holds the dish lists for one weekday.
type DayMenu struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
}
