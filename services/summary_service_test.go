package services

import (
	"testing"
	"time"

	"github.com/chenashkenazi/food-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummaryMultipliesQuantity(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t)

	food := &models.Food{
		Name:        "Banana",
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    100,
		Protein:     10,
		// fiber deliberately absent
	}
	require.NoError(t, f.foods.Create(food))

	date := models.NewDate(2024, time.January, 1)
	_, err := f.meal.Create(alice, mealInput(date,
		MealItemInput{FoodID: food.ID, Quantity: 2, Unit: "serving"},
	))
	require.NoError(t, err)

	summary, err := f.summary.DailySummary(alice, date)
	require.NoError(t, err)

	assert.Equal(t, 200.0, summary.TotalCalories)
	assert.Equal(t, 20.0, summary.TotalProtein)
	assert.Nil(t, summary.TotalFiber)
}

func TestDailySummaryZeroSodiumReportedAbsent(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t)

	zeroSodium := &models.Food{Name: "Water Crackers", ServingSize: 10, ServingUnit: "g", Sodium: ptr(0)}
	noSodium := &models.Food{Name: "Apple", ServingSize: 150, ServingUnit: "g"}
	require.NoError(t, f.foods.Create(zeroSodium))
	require.NoError(t, f.foods.Create(noSodium))

	date := models.NewDate(2024, time.January, 1)
	_, err := f.meal.Create(alice, mealInput(date,
		MealItemInput{FoodID: zeroSodium.ID, Quantity: 1, Unit: "serving"},
		MealItemInput{FoodID: noSodium.ID, Quantity: 1, Unit: "serving"},
	))
	require.NoError(t, err)

	summary, err := f.summary.DailySummary(alice, date)
	require.NoError(t, err)

	// the accumulated sum is zero, so the total reads as absent even though
	// one food nominally recorded a sodium value of zero
	assert.Nil(t, summary.TotalSodium)
}

func TestDailySummaryEmptyDay(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t)

	goal, err := f.goal.Create(alice, GoalInput{
		DailyCalories:      2000,
		DailyProtein:       120,
		DailyCarbohydrates: 250,
		DailyFat:           70,
	})
	require.NoError(t, err)

	summary, err := f.summary.DailySummary(alice, models.NewDate(2024, time.March, 15))
	require.NoError(t, err)

	assert.Zero(t, summary.TotalCalories)
	assert.Zero(t, summary.TotalProtein)
	assert.Zero(t, summary.TotalCarbohydrates)
	assert.Zero(t, summary.TotalFat)
	assert.Nil(t, summary.TotalFiber)
	assert.Nil(t, summary.TotalSugar)
	assert.Nil(t, summary.TotalSodium)

	// the goal is attached regardless of the summary's date
	require.NotNil(t, summary.Goal)
	assert.Equal(t, goal.ID, summary.Goal.ID)
}

func TestDailySummaryEmbedsLatestGoal(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t)

	older := &models.NutritionGoal{
		UserID:        alice.ID,
		DailyCalories: 1800,
		CreatedAt:     time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &models.NutritionGoal{
		UserID:        alice.ID,
		DailyCalories: 2200,
		CreatedAt:     time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.goals.Create(older))
	require.NoError(t, f.goals.Create(newer))

	summary, err := f.summary.DailySummary(alice, models.NewDate(2024, time.January, 1))
	require.NoError(t, err)
	require.NotNil(t, summary.Goal)
	assert.Equal(t, 2200.0, summary.Goal.DailyCalories)
}

func TestDailySummaryScopedToUserAndDate(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t)
	bob := f.user(t)
	food := f.publicFood(t, "Banana")

	target := models.NewDate(2024, time.January, 1)
	other := models.NewDate(2024, time.January, 2)

	_, err := f.meal.Create(alice, mealInput(target, MealItemInput{FoodID: food.ID, Quantity: 1, Unit: "serving"}))
	require.NoError(t, err)
	_, err = f.meal.Create(alice, mealInput(other, MealItemInput{FoodID: food.ID, Quantity: 5, Unit: "serving"}))
	require.NoError(t, err)
	_, err = f.meal.Create(bob, mealInput(target, MealItemInput{FoodID: food.ID, Quantity: 7, Unit: "serving"}))
	require.NoError(t, err)

	summary, err := f.summary.DailySummary(alice, target)
	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.TotalCalories)
}

func TestDailySummaryIdempotent(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t)

	food := &models.Food{
		Name: "Trail Mix", ServingSize: 40, ServingUnit: "g",
		Calories: 180, Protein: 6, Carbohydrates: 14, Fat: 12,
		Fiber: ptr(3), Sugar: ptr(9), Sodium: ptr(45),
	}
	require.NoError(t, f.foods.Create(food))

	date := models.NewDate(2024, time.January, 1)
	_, err := f.meal.Create(alice, mealInput(date,
		MealItemInput{FoodID: food.ID, Quantity: 1.5, Unit: "serving"},
	))
	require.NoError(t, err)

	first, err := f.summary.DailySummary(alice, date)
	require.NoError(t, err)
	second, err := f.summary.DailySummary(alice, date)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NotNil(t, first.TotalFiber)
	assert.InDelta(t, 4.5, *first.TotalFiber, 1e-9)
	require.NotNil(t, first.TotalSodium)
	assert.InDelta(t, 67.5, *first.TotalSodium, 1e-9)
}
