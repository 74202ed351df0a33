package controllers

import (
	"net/http"

	"github.com/chenashkenazi/food-tracker/middlewares"
	"github.com/chenashkenazi/food-tracker/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{goals: goals}
}

func (gc *GoalController) List(c *gin.Context) {
	goals, err := gc.goals.List(middlewares.CurrentUser(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (gc *GoalController) Current(c *gin.Context) {
	goal, err := gc.goals.Current(middlewares.CurrentUser(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (gc *GoalController) Create(c *gin.Context) {
	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	goal, err := gc.goals.Create(middlewares.CurrentUser(c), input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (gc *GoalController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	goal, err := gc.goals.Update(middlewares.CurrentUser(c), id, input)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (gc *GoalController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := gc.goals.Delete(middlewares.CurrentUser(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Nutrition goal deleted successfully"})
}
