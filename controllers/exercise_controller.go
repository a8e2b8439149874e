package controllers

import (
	"net/http"

	"healthtrack/middlewares"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Exercises *services.ExerciseService
}

func NewExerciseController(exercises *services.ExerciseService) *ExerciseController {
	return &ExerciseController{Exercises: exercises}
}

type addExerciseReq struct {
	ActivityName    string   `json:"activityName" binding:"required"`
	CaloriesBurned  *float64 `json:"caloriesBurned" binding:"required,min=0"`
	DurationMinutes *float64 `json:"durationMinutes" binding:"required,min=0"`
}

// GET /api/exercises
func (ec *ExerciseController) Today(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	exercises, err := ec.Exercises.Today(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, "Server Error", err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// POST /api/exercises
func (ec *ExerciseController) Add(c *gin.Context) {
	var req addExerciseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Activity name, calories burned and duration are required")
		return
	}

	user := middlewares.CurrentUser(c)
	entry, err := ec.Exercises.Add(c.Request.Context(), user.ID, services.AddExerciseInput{
		ActivityName:    req.ActivityName,
		CaloriesBurned:  *req.CaloriesBurned,
		DurationMinutes: *req.DurationMinutes,
	})
	if err != nil {
		fail(c, "Server Error", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
