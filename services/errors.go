package services

import "errors"

var (
	ErrEmailTaken          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAINotConfigured     = errors.New("AI service credential not configured")
	ErrAIUnparseable       = errors.New("could not understand AI response")
	ErrRecognitionDisabled = errors.New("image recognition not configured")
	ErrStorageDisabled     = errors.New("avatar storage not configured")
	ErrPushDisabled        = errors.New("push notifications not configured")
	ErrUnknownPlatform     = errors.New("unknown platform")
	ErrStreakContention    = errors.New("streak update kept conflicting")
)
