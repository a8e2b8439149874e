package services

import (
	"context"
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/repository"
	"healthtrack/utils"
)

const AlertGoalExceeded = "goal_exceeded"

// AlertService persists an alert, then fans it out over the realtime hub and push.
// Either fan-out may be nil.
type AlertService struct {
	alerts repository.AlertRepository
	rt     Broadcaster
	push   Pusher
	Now    func() time.Time
}

func NewAlertService(alerts repository.AlertRepository, rt Broadcaster, push Pusher) *AlertService {
	return &AlertService{alerts: alerts, rt: rt, push: push, Now: time.Now}
}

func (s *AlertService) Emit(ctx context.Context, userID, typ, message string) (*models.Alert, error) {
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: s.Now().UTC()}
	if err := s.alerts.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("save alert: %w", err)
	}

	if s.rt != nil {
		s.rt.Broadcast(userID, Event{Kind: "alert.created", Data: a})
	}
	if s.push != nil {
		err := s.push.PushToUser(ctx, userID, "HealthTrack", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
		if err != nil {
			utils.Log.Errorf("push alert %d: %v", a.ID, err)
		}
	}
	return a, nil
}

func (s *AlertService) Recent(ctx context.Context, userID string) ([]models.Alert, error) {
	return s.alerts.ListRecent(ctx, userID, 20)
}
