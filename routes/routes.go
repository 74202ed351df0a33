package routes

import (
	"net/http"

	"github.com/chenashkenazi/food-tracker/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth           *controllers.AuthController
	Foods          *controllers.FoodController
	Meals          *controllers.MealController
	Goals          *controllers.GoalController
	AuthMiddleware gin.HandlerFunc
	AllowedOrigins []string
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Food Tracking API"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
	}

	foods := r.Group("/api/foods")
	foods.Use(d.AuthMiddleware)
	{
		foods.GET("", d.Foods.List)
		foods.POST("", d.Foods.Create)
		foods.GET("/:id", d.Foods.Get)
		foods.PUT("/:id", d.Foods.Update)
		foods.DELETE("/:id", d.Foods.Delete)
	}

	meals := r.Group("/api/meals")
	meals.Use(d.AuthMiddleware)
	{
		meals.GET("", d.Meals.List)
		meals.POST("", d.Meals.Create)
		meals.GET("/daily-summary/:date", d.Meals.DailySummary)
		meals.GET("/:id", d.Meals.Get)
		meals.PUT("/:id", d.Meals.Update)
		meals.DELETE("/:id", d.Meals.Delete)
	}

	goals := r.Group("/api/goals")
	goals.Use(d.AuthMiddleware)
	{
		goals.GET("", d.Goals.List)
		goals.GET("/current", d.Goals.Current)
		goals.POST("", d.Goals.Create)
		goals.PUT("/:id", d.Goals.Update)
		goals.DELETE("/:id", d.Goals.Delete)
	}

	return r
}
