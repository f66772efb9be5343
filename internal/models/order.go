package models

// OrderDateLayout is the calendar-date stamp put on orders. There is no
// time-of-day component.
const OrderDateLayout = "2006-01-02"

// Order is a meal order held only in process memory. IDs are dense,
// 0-based and assigned at insertion; they stay stable until an admin clear
// resets the store.
type Order struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"student_id"`
	OrderedBy int64  `json:"ordered_by"`
	Dish      string `json:"dish"`
	Meal      string `json:"meal"`
	Date      string `json:"time"`
	Given     bool   `json:"given"`
}

// Review is a dish review held only in process memory, append-only.
type Review struct {
	StudentID int64  `json:"student_id"`
	OrderedBy int64  `json:"ordered_by"`
	Dish      string `json:"dish"`
	Meal      string `json:"meal"`
	Review    string `json:"review"`
}

// Stats is the aggregate admin view over the volatile stores.
type Stats struct {
	TotalOrders   int            `json:"total_orders"`
	PopularDishes map[string]int `json:"popular_dishes"`
	Reviews       []Review       `json:"reviews"`
}
