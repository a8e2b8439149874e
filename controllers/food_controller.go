package controllers

import (
	"net/http"

	"healthtrack/middlewares"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{Foods: foods}
}

type addFoodReq struct {
	Name     string   `json:"name" binding:"required"`
	Calories *float64 `json:"calories" binding:"required,min=0"`
	Protein  float64  `json:"protein" binding:"min=0"`
	Carbs    float64  `json:"carbs" binding:"min=0"`
	Fat      float64  `json:"fat" binding:"min=0"`
}

// GET /api/foods
func (fc *FoodController) Today(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	foods, err := fc.Foods.Today(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, "Server Error", err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// POST /api/foods
func (fc *FoodController) Add(c *gin.Context) {
	var req addFoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Name and calories are required")
		return
	}

	entry, err := fc.Foods.Add(c.Request.Context(), middlewares.CurrentUser(c), services.AddFoodInput{
		Name:     req.Name,
		Calories: *req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		fail(c, "Server Error", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
