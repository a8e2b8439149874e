package routes

import (
	"net/http"

	"healthtrack/controllers"
	"healthtrack/middlewares"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

// Deps are the services the HTTP surface is built on. Push may be nil.
type Deps struct {
	Auth      *services.AuthService
	Users     *services.UserService
	Foods     *services.FoodService
	Exercises *services.ExerciseService
	Dashboard *services.DashboardService
	AI        *services.AIService
	Alerts    *services.AlertService
	Push      *services.PushService
	Hub       *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "HealthTrack API is running!")
	})

	userCtl := controllers.NewUserController(d.Auth, d.Users)
	foodCtl := controllers.NewFoodController(d.Foods)
	exerciseCtl := controllers.NewExerciseController(d.Exercises)
	dashboardCtl := controllers.NewDashboardController(d.Dashboard, d.Alerts)
	aiCtl := controllers.NewAIController(d.AI)
	deviceCtl := controllers.NewDeviceController(d.Push)
	realtimeCtl := controllers.NewRealtimeController(d.Hub)

	api := r.Group("/api")

	// Public auth routes
	users := api.Group("/users")
	{
		users.POST("/register", userCtl.Register)
		users.POST("/login", userCtl.Login)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware(d.Auth))
	{
		protected.GET("/users/profile", userCtl.Profile)
		protected.PUT("/users/avatar", userCtl.UpdateAvatar)

		protected.GET("/foods", foodCtl.Today)
		protected.POST("/foods", foodCtl.Add)
		protected.GET("/exercises", exerciseCtl.Today)
		protected.POST("/exercises", exerciseCtl.Add)
		protected.GET("/dashboard", dashboardCtl.Summary)

		protected.POST("/ai/food", aiCtl.Food)
		protected.POST("/ai/exercise", aiCtl.Exercise)
		protected.POST("/ai/food/photo", aiCtl.FoodPhoto)

		protected.GET("/alerts", dashboardCtl.RecentAlerts)
		protected.POST("/devices", deviceCtl.Register)
		protected.POST("/notifications/toggle", deviceCtl.Toggle)
		protected.GET("/ws", realtimeCtl.Events)
	}

	return r
}
