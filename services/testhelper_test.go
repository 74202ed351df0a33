package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/chenashkenazi/food-tracker/config"
	"github.com/chenashkenazi/food-tracker/models"
	"github.com/chenashkenazi/food-tracker/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

type fixture struct {
	db      *gorm.DB
	users   *repository.UserRepository
	foods   *repository.FoodRepository
	meals   *repository.MealRepository
	goals   *repository.GoalRepository
	auth    *AuthService
	food    *FoodService
	meal    *MealService
	goal    *GoalService
	summary *SummaryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := openTestDB(t)
	users := repository.NewUserRepository(db)
	foods := repository.NewFoodRepository(db)
	meals := repository.NewMealRepository(db)
	goals := repository.NewGoalRepository(db)

	return &fixture{
		db:      db,
		users:   users,
		foods:   foods,
		meals:   meals,
		goals:   goals,
		auth:    NewAuthService(users, []byte(testSecret), time.Hour),
		food:    NewFoodService(foods),
		meal:    NewMealService(meals),
		goal:    NewGoalService(goals),
		summary: NewSummaryService(meals, goals),
	}
}

var userSeq int

func (f *fixture) user(t *testing.T) *models.User {
	t.Helper()
	userSeq++
	u, err := f.auth.Register(
		fmt.Sprintf("user%d@example.com", userSeq),
		fmt.Sprintf("user%d", userSeq),
		"password123",
	)
	require.NoError(t, err)
	return u
}

// publicFood seeds a catalog food with no creator.
func (f *fixture) publicFood(t *testing.T, name string) *models.Food {
	t.Helper()
	food := &models.Food{
		Name:        name,
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    100,
		Protein:     10,
	}
	require.NoError(t, f.foods.Create(food))
	return food
}

func (f *fixture) ownedFood(t *testing.T, owner *models.User, name string) *models.Food {
	t.Helper()
	food, err := f.food.Create(owner, FoodInput{
		Name:        name,
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    100,
		Protein:     10,
	})
	require.NoError(t, err)
	return food
}

func ptr(v float64) *float64 { return &v }
