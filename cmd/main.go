package main

import (
	"log"

	"github.com/chenashkenazi/food-tracker/config"
	"github.com/chenashkenazi/food-tracker/controllers"
	"github.com/chenashkenazi/food-tracker/middlewares"
	"github.com/chenashkenazi/food-tracker/repository"
	"github.com/chenashkenazi/food-tracker/routes"
	"github.com/chenashkenazi/food-tracker/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := cfg.OpenDB()
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	users := repository.NewUserRepository(db)
	foods := repository.NewFoodRepository(db)
	meals := repository.NewMealRepository(db)
	goals := repository.NewGoalRepository(db)

	authSvc := services.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)
	foodSvc := services.NewFoodService(foods)
	mealSvc := services.NewMealService(meals)
	goalSvc := services.NewGoalService(goals)
	summarySvc := services.NewSummaryService(meals, goals)

	r := routes.SetupRouter(routes.Deps{
		Auth:           controllers.NewAuthController(authSvc),
		Foods:          controllers.NewFoodController(foodSvc),
		Meals:          controllers.NewMealController(mealSvc, summarySvc),
		Goals:          controllers.NewGoalController(goalSvc),
		AuthMiddleware: middlewares.AuthMiddleware(authSvc),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
