package models

// Category is a benefit-fund bucket. Every wallet belongs to exactly one category.
type Category string

// Benefit categories
const (
	CategoryFood Category = "FOOD"
	CategoryMeal Category = "MEAL"
	CategoryCash Category = "CASH" // universal fallback, also the default when no MCC matches
)

// Categories lists every benefit category in a stable order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryMeal, CategoryCash}
}
