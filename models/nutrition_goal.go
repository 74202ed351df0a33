package models

import "time"

// NutritionGoal is a snapshot of a user's daily targets. Posting a new goal
// versions the history; the "current" goal is simply the newest row.
type NutritionGoal struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"index;not null" json:"user_id"`
	DailyCalories      float64   `json:"daily_calories"`
	DailyProtein       float64   `json:"daily_protein"`
	DailyCarbohydrates float64   `json:"daily_carbohydrates"`
	DailyFat           float64   `json:"daily_fat"`
	DailyFiber         *float64  `json:"daily_fiber"`
	DailySugar         *float64  `json:"daily_sugar"`
	DailySodium        *float64  `json:"daily_sodium"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
