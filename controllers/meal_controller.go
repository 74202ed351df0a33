package controllers

import (
	"net/http"

	"github.com/chenashkenazi/food-tracker/middlewares"
	"github.com/chenashkenazi/food-tracker/models"
	"github.com/chenashkenazi/food-tracker/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals   *services.MealService
	summary *services.SummaryService
}

func NewMealController(meals *services.MealService, summary *services.SummaryService) *MealController {
	return &MealController{meals: meals, summary: summary}
}

func (mc *MealController) List(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 100)
	if !ok {
		return
	}

	filter := models.MealFilter{
		MealType: c.Query("meal_type"),
		Skip:     skip,
		Limit:    limit,
	}

	if v := c.Query("start_date"); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			abortValidation(c, err)
			return
		}
		filter.StartDate = &d
	}
	if v := c.Query("end_date"); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			abortValidation(c, err)
			return
		}
		filter.EndDate = &d
	}

	meals, err := mc.meals.List(middlewares.CurrentUser(c), filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) DailySummary(c *gin.Context) {
	date, err := models.ParseDate(c.Param("date"))
	if err != nil {
		abortValidation(c, err)
		return
	}

	summary, err := mc.summary.DailySummary(middlewares.CurrentUser(c), date)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (mc *MealController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	meal, err := mc.meals.Get(middlewares.CurrentUser(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) Create(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	meal, err := mc.meals.Create(middlewares.CurrentUser(c), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	meal, err := mc.meals.Update(middlewares.CurrentUser(c), id, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := mc.meals.Delete(middlewares.CurrentUser(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
