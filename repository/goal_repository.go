package repository

import (
	"github.com/chenashkenazi/food-tracker/models"

	"gorm.io/gorm"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListOwned(userID uint) ([]models.NutritionGoal, error) {
	var goals []models.NutritionGoal
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

// Latest returns the most recently created goal, which is by definition the
// user's current one.
func (r *GoalRepository) Latest(userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) GetOwned(userID, goalID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := r.db.Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Create(goal *models.NutritionGoal) error {
	return r.db.Create(goal).Error
}

func (r *GoalRepository) Save(goal *models.NutritionGoal) error {
	return r.db.Save(goal).Error
}

func (r *GoalRepository) Delete(goal *models.NutritionGoal) error {
	return r.db.Delete(goal).Error
}
