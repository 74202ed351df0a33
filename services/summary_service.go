package services

import (
	"errors"

	"github.com/chenashkenazi/food-tracker/models"

	"gorm.io/gorm"
)

// DailyNutritionSummary is the aggregate of everything a user ate on one
// day, next to their current goal. Required nutrients are always numbers;
// the optional ones are nil when nothing contributed to them.
type DailyNutritionSummary struct {
	Date               models.Date           `json:"date"`
	TotalCalories      float64               `json:"total_calories"`
	TotalProtein       float64               `json:"total_protein"`
	TotalCarbohydrates float64               `json:"total_carbohydrates"`
	TotalFat           float64               `json:"total_fat"`
	TotalFiber         *float64              `json:"total_fiber"`
	TotalSugar         *float64              `json:"total_sugar"`
	TotalSodium        *float64              `json:"total_sodium"`
	Goal               *models.NutritionGoal `json:"goal"`
}

type SummaryService struct {
	meals MealStore
	goals GoalStore
}

func NewSummaryService(meals MealStore, goals GoalStore) *SummaryService {
	return &SummaryService{meals: meals, goals: goals}
}

// DailySummary recomputes one day's totals from scratch on every call.
// Each item multiplies its food's per-serving nutrients by the logged
// quantity. A food's fiber/sugar/sodium contribute only when recorded;
// an optional total that stays at zero is reported as absent, which also
// swallows "every contribution was exactly zero" (kept for compatibility
// with the existing API consumers).
func (s *SummaryService) DailySummary(requester *models.User, date models.Date) (*DailyNutritionSummary, error) {
	meals, err := s.meals.ListForDate(requester.ID, date)
	if err != nil {
		return nil, err
	}

	summary := &DailyNutritionSummary{Date: date}
	var fiber, sugar, sodium float64

	for _, meal := range meals {
		for _, item := range meal.MealItems {
			q := item.Quantity
			summary.TotalCalories += item.Food.Calories * q
			summary.TotalProtein += item.Food.Protein * q
			summary.TotalCarbohydrates += item.Food.Carbohydrates * q
			summary.TotalFat += item.Food.Fat * q

			if item.Food.Fiber != nil {
				fiber += *item.Food.Fiber * q
			}
			if item.Food.Sugar != nil {
				sugar += *item.Food.Sugar * q
			}
			if item.Food.Sodium != nil {
				sodium += *item.Food.Sodium * q
			}
		}
	}

	summary.TotalFiber = optionalTotal(fiber)
	summary.TotalSugar = optionalTotal(sugar)
	summary.TotalSodium = optionalTotal(sodium)

	goal, err := s.goals.Latest(requester.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	summary.Goal = goal

	return summary, nil
}

func optionalTotal(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
