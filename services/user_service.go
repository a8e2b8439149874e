package services

import (
	"context"

	"healthtrack/models"
	"healthtrack/repository"
	"healthtrack/utils"
)

type Profile struct {
	*models.User
	BMI         float64 `json:"bmi,omitempty"`
	BMICategory string  `json:"bmiCategory,omitempty"`
}

type UserService struct {
	users   repository.UserRepository
	avatars AvatarUploader
}

// NewUserService wires profile reads and avatar uploads. avatars may be nil.
func NewUserService(users repository.UserRepository, avatars AvatarUploader) *UserService {
	return &UserService{users: users, avatars: avatars}
}

func (s *UserService) Profile(user *models.User) Profile {
	p := Profile{User: user}
	if bmi, err := utils.CalculateBMI(user.Height, user.CurrentWeight); err == nil {
		p.BMI = bmi
		p.BMICategory = utils.BMICategory(bmi)
	}
	return p
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, dataURI string) (string, error) {
	if s.avatars == nil {
		return "", ErrStorageDisabled
	}
	url, err := s.avatars.Upload(ctx, userID, dataURI)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdateProfilePicture(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
