package controllers

import (
	"net/http"

	"github.com/chenashkenazi/food-tracker/middlewares"
	"github.com/chenashkenazi/food-tracker/models"
	"github.com/chenashkenazi/food-tracker/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

func (fc *FoodController) List(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 100)
	if !ok {
		return
	}

	filter := models.FoodFilter{
		Search:  c.Query("search"),
		Barcode: c.Query("barcode"),
		Skip:    skip,
		Limit:   limit,
	}

	foods, err := fc.foods.List(middlewares.CurrentUser(c), filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	food, err := fc.foods.Get(middlewares.CurrentUser(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Create(c *gin.Context) {
	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	food, err := fc.foods.Create(middlewares.CurrentUser(c), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (fc *FoodController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	food, err := fc.foods.Update(middlewares.CurrentUser(c), id, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := fc.foods.Delete(middlewares.CurrentUser(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food deleted successfully"})
}
