package models

import "time"

// Meal is one logged eating occasion owned by exactly one user.
type Meal struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Name      string     `gorm:"not null" json:"name"`
	MealType  string     `gorm:"index" json:"meal_type"`
	Date      Date       `gorm:"index;not null" json:"date"`
	Notes     *string    `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	MealItems []MealItem `json:"meal_items"`
}

// MealItem links a meal to a food with a serving multiplier. Items are never
// edited in place: a meal update replaces the whole set.
type MealItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	MealID   uint    `gorm:"index;not null" json:"-"`
	FoodID   uint    `gorm:"not null" json:"food_id"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Food     Food    `json:"food"`
}

// MealFilter narrows a user's meal listing.
type MealFilter struct {
	StartDate *Date
	EndDate   *Date
	MealType  string
	Skip      int
	Limit     int
}
