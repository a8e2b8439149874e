package controllers

import (
	"errors"
	"net/http"

	"healthtrack/services"
	"healthtrack/utils"

	"github.com/gin-gonic/gin"
)

// fail logs err and answers with a generic message. Features whose backing
// service is not configured answer 503 instead of 500.
func fail(c *gin.Context, msg string, err error) {
	utils.Log.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)

	status := http.StatusInternalServerError
	if errors.Is(err, services.ErrStorageDisabled) ||
		errors.Is(err, services.ErrRecognitionDisabled) ||
		errors.Is(err, services.ErrPushDisabled) {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"message": msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}
