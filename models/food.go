package models

import "time"

// Food holds nutrient values per single serving. A nil CreatorID marks a
// globally visible catalog entry; otherwise the food belongs to its creator
// and nobody else may see or change it.
type Food struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"index;not null" json:"name"`
	Brand         *string   `json:"brand"`
	Barcode       *string   `gorm:"index" json:"barcode"`
	ServingSize   float64   `json:"serving_size"`
	ServingUnit   string    `json:"serving_unit"`
	Calories      float64   `json:"calories"`
	Protein       float64   `json:"protein"`
	Carbohydrates float64   `json:"carbohydrates"`
	Fat           float64   `json:"fat"`
	Fiber         *float64  `json:"fiber"`
	Sugar         *float64  `json:"sugar"`
	Sodium        *float64  `json:"sodium"`
	CreatorID     *uint     `gorm:"index" json:"creator_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// FoodFilter narrows catalog listings. Barcode wins over Search when both
// are set; the two are never combined.
type FoodFilter struct {
	Search  string
	Barcode string
	Skip    int
	Limit   int
}
