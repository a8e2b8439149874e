package controllers

import (
	"errors"
	"net/http"

	"healthtrack/middlewares"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

// NewDeviceController accepts a nil PushService; every call then answers 503.
func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{Push: ps}
}

type toggleReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// POST /api/devices
func (dc *DeviceController) Register(c *gin.Context) {
	if dc.Push == nil {
		fail(c, "Push notifications are not configured", services.ErrPushDisabled)
		return
	}

	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Platform and token are required")
		return
	}

	user := middlewares.CurrentUser(c)
	dev, err := dc.Push.RegisterDevice(c.Request.Context(), user.ID, req.Platform, req.Token)
	if errors.Is(err, services.ErrUnknownPlatform) {
		badRequest(c, "Platform must be android or ios")
		return
	}
	if err != nil {
		fail(c, "Failed to register device", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"endpointArn": dev.EndpointARN})
}

// POST /api/notifications/toggle
func (dc *DeviceController) Toggle(c *gin.Context) {
	if dc.Push == nil {
		fail(c, "Push notifications are not configured", services.ErrPushDisabled)
		return
	}

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "enabled is required")
		return
	}

	user := middlewares.CurrentUser(c)
	if err := dc.Push.SetEnabled(c.Request.Context(), user.ID, *req.Enabled); err != nil {
		fail(c, "Server Error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": *req.Enabled,
	})
}
