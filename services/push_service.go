package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthtrack/models"
	"healthtrack/repository"
	"healthtrack/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
)

// Pusher delivers a mobile notification to all of a user's enabled devices.
type Pusher interface {
	PushToUser(ctx context.Context, userID, title, body string, data map[string]string) error
}

// SNSAPI is the slice of the SNS client the push service calls.
type SNSAPI interface {
	CreatePlatformEndpoint(ctx context.Context, in *awssns.CreatePlatformEndpointInput, optFns ...func(*awssns.Options)) (*awssns.CreatePlatformEndpointOutput, error)
	Publish(ctx context.Context, in *awssns.PublishInput, optFns ...func(*awssns.Options)) (*awssns.PublishOutput, error)
}

type PushService struct {
	devices        repository.DeviceRepository
	sns            SNSAPI
	fcmPlatformArn string
}

func NewPushService(devices repository.DeviceRepository, client SNSAPI, fcmPlatformArn string) *PushService {
	return &PushService{devices: devices, sns: client, fcmPlatformArn: fcmPlatformArn}
}

// NewSNSPushService builds a PushService backed by the real SNS client.
func NewSNSPushService(cfg aws.Config, devices repository.DeviceRepository, fcmPlatformArn string) *PushService {
	return NewPushService(devices, awssns.NewFromConfig(cfg), fcmPlatformArn)
}

type RegisterDeviceReq struct {
	Platform string `json:"platform" binding:"required"` // "android" | "ios"
	Token    string `json:"token" binding:"required"`
}

func tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

func (p *PushService) platformArn(platform string) (string, error) {
	switch strings.ToLower(platform) {
	case "android", "ios":
		if p.fcmPlatformArn == "" {
			return "", ErrPushDisabled
		}
		return p.fcmPlatformArn, nil
	default:
		return "", ErrUnknownPlatform
	}
}

func (p *PushService) RegisterDevice(ctx context.Context, userID, platform, token string) (*models.UserDevice, error) {
	appArn, err := p.platformArn(platform)
	if err != nil {
		return nil, err
	}

	out, err := p.sns.CreatePlatformEndpoint(ctx, &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(appArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, fmt.Errorf("create platform endpoint: %w", err)
	}

	hash := tokenHash(token)
	dev, err := p.devices.FindByTokenHash(ctx, userID, hash)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		dev = &models.UserDevice{UserID: userID, TokenHash: hash, Enabled: true}
	case err != nil:
		return nil, err
	}
	dev.Platform = strings.ToLower(platform)
	dev.EndpointARN = aws.ToString(out.EndpointArn)
	dev.UpdatedAt = time.Now()

	if err := p.devices.Save(ctx, dev); err != nil {
		return nil, err
	}
	return dev, nil
}

func (p *PushService) SetEnabled(ctx context.Context, userID string, enabled bool) error {
	_, err := p.devices.SetEnabled(ctx, userID, enabled)
	return err
}

func (p *PushService) PushToUser(ctx context.Context, userID, title, body string, data map[string]string) error {
	endpoints, err := p.devices.ListEnabled(ctx, userID)
	if err != nil {
		return err
	}
	if len(endpoints) == 0 {
		return nil
	}

	gcm, err := json.Marshal(map[string]any{
		"notification": map[string]string{"title": title, "body": body},
		"data":         data,
	})
	if err != nil {
		return err
	}
	raw, err := json.Marshal(map[string]string{
		"default": body,
		"GCM":     string(gcm),
	})
	if err != nil {
		return err
	}

	var failed int
	for _, d := range endpoints {
		_, err := p.sns.Publish(ctx, &awssns.PublishInput{
			MessageStructure: aws.String("json"),
			Message:          aws.String(string(raw)),
			TargetArn:        aws.String(d.EndpointARN),
		})
		if err != nil {
			failed++
			utils.Log.Errorf("sns publish to %s: %v", d.EndpointARN, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("push failed for %d of %d devices", failed, len(endpoints))
	}
	return nil
}
