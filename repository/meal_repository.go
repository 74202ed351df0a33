package repository

import (
	"errors"

	"github.com/chenashkenazi/food-tracker/models"

	"gorm.io/gorm"
)

// ErrFoodReference is returned when a meal item points at a food that does
// not exist. The surrounding transaction is rolled back, so the meal is
// either fully written or not written at all.
var ErrFoodReference = errors.New("meal item references unknown food")

type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) ListOwned(userID uint, filter models.MealFilter) ([]models.Meal, error) {
	q := r.db.Preload("MealItems").Preload("MealItems.Food").
		Where("user_id = ?", userID)

	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}
	if filter.MealType != "" {
		q = q.Where("meal_type = ?", filter.MealType)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var meals []models.Meal
	err := q.Order("date DESC").Offset(filter.Skip).Limit(limit).Find(&meals).Error
	return meals, err
}

func (r *MealRepository) ListForDate(userID uint, date models.Date) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Preload("MealItems").Preload("MealItems.Food").
		Where("user_id = ? AND date = ?", userID, date).
		Find(&meals).Error
	return meals, err
}

// GetOwned scopes the lookup to the owner, so someone else's meal is
// indistinguishable from a missing one.
func (r *MealRepository) GetOwned(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.Preload("MealItems").Preload("MealItems.Food").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// Create writes the meal and its items in one transaction, verifying each
// referenced food first.
func (r *MealRepository) Create(meal *models.Meal, items []models.MealItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("MealItems").Create(meal).Error; err != nil {
			return err
		}
		return insertItems(tx, meal.ID, items)
	})
	if err != nil {
		return err
	}
	return r.reload(meal)
}

// Replace saves the meal's scalar fields, drops every existing item and
// inserts the supplied set, all in one transaction.
func (r *MealRepository) Replace(meal *models.Meal, items []models.MealItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("MealItems").Save(meal).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		return insertItems(tx, meal.ID, items)
	})
	if err != nil {
		return err
	}
	return r.reload(meal)
}

// Delete removes the meal's items in the same transaction as the meal, so
// no orphaned items can survive.
func (r *MealRepository) Delete(meal *models.Meal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(meal).Error
	})
}

func insertItems(tx *gorm.DB, mealID uint, items []models.MealItem) error {
	for i := range items {
		var count int64
		if err := tx.Model(&models.Food{}).Where("id = ?", items[i].FoodID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrFoodReference
		}

		item := models.MealItem{
			MealID:   mealID,
			FoodID:   items[i].FoodID,
			Quantity: items[i].Quantity,
			Unit:     items[i].Unit,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *MealRepository) reload(meal *models.Meal) error {
	return r.db.Preload("MealItems").Preload("MealItems.Food").
		First(meal, meal.ID).Error
}
