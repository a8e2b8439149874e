package controllers

import (
	"errors"
	"net/http"

	"healthtrack/middlewares"
	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Auth  *services.AuthService
	Users *services.UserService
}

func NewUserController(auth *services.AuthService, users *services.UserService) *UserController {
	return &UserController{Auth: auth, Users: users}
}

type registerReq struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	Age           int     `json:"age" binding:"required,gt=0"`
	Height        float64 `json:"height" binding:"required,gt=0"`
	CurrentWeight float64 `json:"currentWeight" binding:"required,gt=0"`
	TargetWeight  float64 `json:"targetWeight" binding:"required,gt=0"`
	ActivityLevel string  `json:"activityLevel"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type avatarReq struct {
	Image string `json:"image" binding:"required"`
}

func authResponse(res *services.AuthResult) gin.H {
	return gin.H{
		"_id":            res.User.ID,
		"name":           res.User.Name,
		"email":          res.User.Email,
		"calorieGoal":    res.User.CalorieGoal,
		"streak":         res.User.Streak,
		"profilePicture": res.User.ProfilePicture,
		"token":          res.Token,
	}
}

// POST /api/users/register
func (uc *UserController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid user data")
		return
	}

	res, err := uc.Auth.Register(c.Request.Context(), services.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Gender:        req.Gender,
		Age:           req.Age,
		Height:        req.Height,
		CurrentWeight: req.CurrentWeight,
		TargetWeight:  req.TargetWeight,
		ActivityLevel: req.ActivityLevel,
	})
	if errors.Is(err, services.ErrEmailTaken) {
		badRequest(c, "User already exists")
		return
	}
	if err != nil {
		fail(c, "Server Error", err)
		return
	}

	c.JSON(http.StatusCreated, authResponse(res))
}

// POST /api/users/login
func (uc *UserController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email and password are required")
		return
	}

	res, err := uc.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	if err != nil {
		fail(c, "Server Error", err)
		return
	}

	c.JSON(http.StatusOK, authResponse(res))
}

// GET /api/users/profile
func (uc *UserController) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, uc.Users.Profile(middlewares.CurrentUser(c)))
}

// PUT /api/users/avatar  { "image": "data:image/png;base64,..." }
func (uc *UserController) UpdateAvatar(c *gin.Context) {
	var req avatarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Image is required")
		return
	}
	if _, _, err := services.DecodeDataURI(req.Image); err != nil {
		badRequest(c, "Invalid image")
		return
	}

	user := middlewares.CurrentUser(c)
	url, err := uc.Users.UpdateAvatar(c.Request.Context(), user.ID, req.Image)
	if err != nil {
		fail(c, "Failed to upload avatar", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profilePicture": url})
}
