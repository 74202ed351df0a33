package services

import (
	"errors"

	"github.com/chenashkenazi/food-tracker/models"
	"github.com/chenashkenazi/food-tracker/repository"

	"gorm.io/gorm"
)

type MealStore interface {
	ListOwned(userID uint, filter models.MealFilter) ([]models.Meal, error)
	ListForDate(userID uint, date models.Date) ([]models.Meal, error)
	GetOwned(userID, mealID uint) (*models.Meal, error)
	Create(meal *models.Meal, items []models.MealItem) error
	Replace(meal *models.Meal, items []models.MealItem) error
	Delete(meal *models.Meal) error
}

type MealItemInput struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	Unit     string  `json:"unit" binding:"required"`
}

type MealInput struct {
	Name     string `json:"name" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
	// pointer so a missing date fails the required check; the zero value of
	// a struct-typed field would slip through binding
	Date      *models.Date    `json:"date" binding:"required"`
	Notes     *string         `json:"notes"`
	MealItems []MealItemInput `json:"meal_items"`
}

func (in *MealInput) items() []models.MealItem {
	items := make([]models.MealItem, 0, len(in.MealItems))
	for _, it := range in.MealItems {
		items = append(items, models.MealItem{
			FoodID:   it.FoodID,
			Quantity: it.Quantity,
			Unit:     it.Unit,
		})
	}
	return items
}

type MealService struct {
	meals MealStore
}

func NewMealService(meals MealStore) *MealService {
	return &MealService{meals: meals}
}

func (s *MealService) List(requester *models.User, filter models.MealFilter) ([]models.Meal, error) {
	return s.meals.ListOwned(requester.ID, filter)
}

// Get never distinguishes "someone else's meal" from "no such meal".
func (s *MealService) Get(requester *models.User, id uint) (*models.Meal, error) {
	meal, err := s.meals.GetOwned(requester.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Create(requester *models.User, in MealInput) (*models.Meal, error) {
	meal := &models.Meal{
		UserID:   requester.ID,
		Name:     in.Name,
		MealType: in.MealType,
		Date:     *in.Date,
		Notes:    in.Notes,
	}
	if err := s.meals.Create(meal, in.items()); err != nil {
		if errors.Is(err, repository.ErrFoodReference) {
			return nil, ErrFoodReference
		}
		return nil, err
	}
	return meal, nil
}

// Update replaces the meal's scalar fields and its entire item set.
func (s *MealService) Update(requester *models.User, id uint, in MealInput) (*models.Meal, error) {
	meal, err := s.Get(requester, id)
	if err != nil {
		return nil, err
	}

	meal.Name = in.Name
	meal.MealType = in.MealType
	meal.Date = *in.Date
	meal.Notes = in.Notes
	meal.MealItems = nil

	if err := s.meals.Replace(meal, in.items()); err != nil {
		if errors.Is(err, repository.ErrFoodReference) {
			return nil, ErrFoodReference
		}
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(requester *models.User, id uint) error {
	meal, err := s.Get(requester, id)
	if err != nil {
		return err
	}
	return s.meals.Delete(meal)
}
