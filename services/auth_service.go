package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthtrack/models"
	"healthtrack/repository"
	"healthtrack/utils"
)

type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Gender        string
	Age           int
	Height        float64
	CurrentWeight float64
	TargetWeight  float64
	ActivityLevel string
}

// AuthResult is a user together with a freshly issued session token.
type AuthResult struct {
	User  *models.User
	Token string
}

type AuthService struct {
	users   repository.UserRepository
	streaks *StreakService
	mailer  Mailer
	secret  string
	Now     func() time.Time
}

// NewAuthService wires registration and login. mailer may be nil.
func NewAuthService(users repository.UserRepository, streaks *StreakService, mailer Mailer, secret string) *AuthService {
	return &AuthService{users: users, streaks: streaks, mailer: mailer, secret: secret, Now: time.Now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	activity := strings.ToLower(strings.TrimSpace(in.ActivityLevel))
	if activity == "" {
		activity = "sedentary"
	}

	now := s.Now()
	user := &models.User{
		Name:          strings.TrimSpace(in.Name),
		Email:         email,
		Password:      hashed,
		Gender:        strings.ToLower(strings.TrimSpace(in.Gender)),
		Age:           in.Age,
		Height:        in.Height,
		CurrentWeight: in.CurrentWeight,
		TargetWeight:  in.TargetWeight,
		ActivityLevel: activity,
		CalorieGoal: CalculateCalorieGoal(GoalInput{
			Gender:        in.Gender,
			Age:           in.Age,
			HeightCm:      in.Height,
			CurrentWeight: in.CurrentWeight,
			TargetWeight:  in.TargetWeight,
			ActivityLevel: activity,
		}),
		Streak:    1,
		LastLogin: &now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration for the same email
		if _, findErr := s.users.FindByEmail(ctx, email); findErr == nil {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, user.Email, user.Name, user.CalorieGoal); err != nil {
			utils.Log.Errorf("welcome email to %s: %v", user.Email, err)
		}
	}

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	user, err = s.streaks.RecordLogin(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	id, err := utils.ParseJWT(token, s.secret)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.ErrInvalidToken
	}
	return user, err
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateJWT(user.ID, s.secret, s.Now())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
