package repository

import (
	"github.com/chenashkenazi/food-tracker/models"

	"gorm.io/gorm"
)

type FoodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// ListVisible returns public foods plus the requester's own, filtered.
func (r *FoodRepository) ListVisible(userID uint, filter models.FoodFilter) ([]models.Food, error) {
	q := r.db.Model(&models.Food{})

	if filter.Barcode != "" {
		q = q.Where("barcode = ?", filter.Barcode)
	} else if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	q = q.Where("(creator_id IS NULL OR creator_id = ?)", userID)

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var foods []models.Food
	err := q.Offset(filter.Skip).Limit(limit).Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) ByID(id uint) (*models.Food, error) {
	var food models.Food
	if err := r.db.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) Create(food *models.Food) error {
	return r.db.Create(food).Error
}

func (r *FoodRepository) Save(food *models.Food) error {
	return r.db.Save(food).Error
}

func (r *FoodRepository) Delete(food *models.Food) error {
	return r.db.Delete(food).Error
}
