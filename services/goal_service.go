package services

import (
	"errors"

	"github.com/chenashkenazi/food-tracker/models"

	"gorm.io/gorm"
)

type GoalStore interface {
	ListOwned(userID uint) ([]models.NutritionGoal, error)
	Latest(userID uint) (*models.NutritionGoal, error)
	GetOwned(userID, goalID uint) (*models.NutritionGoal, error)
	Create(goal *models.NutritionGoal) error
	Save(goal *models.NutritionGoal) error
	Delete(goal *models.NutritionGoal) error
}

type GoalInput struct {
	DailyCalories      float64  `json:"daily_calories" binding:"required"`
	DailyProtein       float64  `json:"daily_protein" binding:"required"`
	DailyCarbohydrates float64  `json:"daily_carbohydrates" binding:"required"`
	DailyFat           float64  `json:"daily_fat" binding:"required"`
	DailyFiber         *float64 `json:"daily_fiber"`
	DailySugar         *float64 `json:"daily_sugar"`
	DailySodium        *float64 `json:"daily_sodium"`
}

func (in *GoalInput) apply(goal *models.NutritionGoal) {
	goal.DailyCalories = in.DailyCalories
	goal.DailyProtein = in.DailyProtein
	goal.DailyCarbohydrates = in.DailyCarbohydrates
	goal.DailyFat = in.DailyFat
	goal.DailyFiber = in.DailyFiber
	goal.DailySugar = in.DailySugar
	goal.DailySodium = in.DailySodium
}

type GoalService struct {
	goals GoalStore
}

func NewGoalService(goals GoalStore) *GoalService {
	return &GoalService{goals: goals}
}

func (s *GoalService) List(requester *models.User) ([]models.NutritionGoal, error) {
	return s.goals.ListOwned(requester.ID)
}

func (s *GoalService) Current(requester *models.User) (*models.NutritionGoal, error) {
	goal, err := s.goals.Latest(requester.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return goal, nil
}

// Create records a new goal snapshot; earlier goals stay as history.
func (s *GoalService) Create(requester *models.User, in GoalInput) (*models.NutritionGoal, error) {
	goal := &models.NutritionGoal{UserID: requester.ID}
	in.apply(goal)
	if err := s.goals.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Update(requester *models.User, id uint, in GoalInput) (*models.NutritionGoal, error) {
	goal, err := s.owned(requester, id)
	if err != nil {
		return nil, err
	}
	in.apply(goal)
	if err := s.goals.Save(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(requester *models.User, id uint) error {
	goal, err := s.owned(requester, id)
	if err != nil {
		return err
	}
	return s.goals.Delete(goal)
}

func (s *GoalService) owned(requester *models.User, id uint) (*models.NutritionGoal, error) {
	goal, err := s.goals.GetOwned(requester.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return goal, nil
}
