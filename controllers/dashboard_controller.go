package controllers

import (
	"net/http"

	"healthtrack/middlewares"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
	Alerts    *services.AlertService
}

func NewDashboardController(dashboard *services.DashboardService, alerts *services.AlertService) *DashboardController {
	return &DashboardController{Dashboard: dashboard, Alerts: alerts}
}

// GET /api/dashboard
func (dc *DashboardController) Summary(c *gin.Context) {
	summary, err := dc.Dashboard.Summary(c.Request.Context(), middlewares.CurrentUser(c))
	if err != nil {
		fail(c, "Server Error", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/alerts
func (dc *DashboardController) RecentAlerts(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	alerts, err := dc.Alerts.Recent(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, "Server Error", err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}
