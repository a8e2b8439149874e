package controllers

import (
	"net/http"

	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AI *services.AIService
}

func NewAIController(ai *services.AIService) *AIController {
	return &AIController{AI: ai}
}

type analyzeReq struct {
	Text string `json:"text" binding:"required"`
}

type photoReq struct {
	Image string `json:"image" binding:"required"`
}

// POST /api/ai/food  { "text": "2 eggs and toast" }
func (ac *AIController) Food(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Text is required")
		return
	}

	items, err := ac.AI.AnalyzeFood(c.Request.Context(), req.Text)
	if err != nil {
		fail(c, "Failed to analyze food", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/ai/exercise  { "text": "ran 5k" }
func (ac *AIController) Exercise(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Text is required")
		return
	}

	items, err := ac.AI.AnalyzeExercise(c.Request.Context(), req.Text)
	if err != nil {
		fail(c, "Failed to analyze exercise", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/ai/food/photo  { "image": "data:image/jpeg;base64,..." }
func (ac *AIController) FoodPhoto(c *gin.Context) {
	var req photoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Image is required")
		return
	}
	if _, _, err := services.DecodeDataURI(req.Image); err != nil {
		badRequest(c, "Invalid image")
		return
	}

	items, err := ac.AI.AnalyzeFoodPhoto(c.Request.Context(), req.Image)
	if err != nil {
		fail(c, "Failed to analyze photo", err)
		return
	}
	c.JSON(http.StatusOK, items)
}
