package services

import (
	"errors"

	"github.com/chenashkenazi/food-tracker/models"

	"gorm.io/gorm"
)

type FoodStore interface {
	ListVisible(userID uint, filter models.FoodFilter) ([]models.Food, error)
	ByID(id uint) (*models.Food, error)
	Create(food *models.Food) error
	Save(food *models.Food) error
	Delete(food *models.Food) error
}

// FoodInput is the full mutable surface of a food. Update applies every
// field, matching create semantics.
type FoodInput struct {
	Name          string   `json:"name" binding:"required"`
	Brand         *string  `json:"brand"`
	Barcode       *string  `json:"barcode"`
	ServingSize   float64  `json:"serving_size" binding:"required"`
	ServingUnit   string   `json:"serving_unit" binding:"required"`
	Calories      float64  `json:"calories"`
	Protein       float64  `json:"protein"`
	Carbohydrates float64  `json:"carbohydrates"`
	Fat           float64  `json:"fat"`
	Fiber         *float64 `json:"fiber"`
	Sugar         *float64 `json:"sugar"`
	Sodium        *float64 `json:"sodium"`
}

func (in *FoodInput) apply(food *models.Food) {
	food.Name = in.Name
	food.Brand = in.Brand
	food.Barcode = in.Barcode
	food.ServingSize = in.ServingSize
	food.ServingUnit = in.ServingUnit
	food.Calories = in.Calories
	food.Protein = in.Protein
	food.Carbohydrates = in.Carbohydrates
	food.Fat = in.Fat
	food.Fiber = in.Fiber
	food.Sugar = in.Sugar
	food.Sodium = in.Sodium
}

type FoodService struct {
	foods FoodStore
}

func NewFoodService(foods FoodStore) *FoodService {
	return &FoodService{foods: foods}
}

func (s *FoodService) List(requester *models.User, filter models.FoodFilter) ([]models.Food, error) {
	return s.foods.ListVisible(requester.ID, filter)
}

// Get returns a food when it is public or owned by the requester.
func (s *FoodService) Get(requester *models.User, id uint) (*models.Food, error) {
	food, err := s.foods.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if food.CreatorID != nil && *food.CreatorID != requester.ID {
		return nil, ErrForbidden
	}
	return food, nil
}

func (s *FoodService) Create(requester *models.User, in FoodInput) (*models.Food, error) {
	food := &models.Food{CreatorID: &requester.ID}
	in.apply(food)
	if err := s.foods.Create(food); err != nil {
		return nil, err
	}
	return food, nil
}

// Update requires the requester to be the creator. Public foods have no
// creator, so they can never be mutated through this path.
func (s *FoodService) Update(requester *models.User, id uint, in FoodInput) (*models.Food, error) {
	food, err := s.mutable(requester, id)
	if err != nil {
		return nil, err
	}
	in.apply(food)
	if err := s.foods.Save(food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Delete(requester *models.User, id uint) error {
	food, err := s.mutable(requester, id)
	if err != nil {
		return err
	}
	return s.foods.Delete(food)
}

func (s *FoodService) mutable(requester *models.User, id uint) (*models.Food, error) {
	food, err := s.foods.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if food.CreatorID == nil || *food.CreatorID != requester.ID {
		return nil, ErrForbidden
	}
	return food, nil
}
