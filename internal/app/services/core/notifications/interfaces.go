package notifications

import (
	"context"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/pkg/dto/requests"
)

type DoctorFanOutInput struct {
	RequestID         string
	PatientID         string
	TherapyType       string
	Urgency           string
	PreferredDoctorID string
}

type UserNotificationInput struct {
	UserID     string
	Type       string
	Priority   string
	Message    string
	FromUserID string
	Data       map[string]interface{}
}

type FeedbackFanOutInput struct {
	FeedbackID    string
	PatientID     string
	PatientName   string
	PainLevel     int
	Symptoms      []string
	Complications []string
}

type NotificationUsecase interface {
	// NotifyDoctors fans a new therapy request out to the doctor roster.
	// A preferred doctor is exclusive: only that doctor is notified.
	// Per-recipient failures are logged and skipped.
	NotifyDoctors(ctx context.Context, input *DoctorFanOutInput)
	NotifyUser(ctx context.Context, input *UserNotificationInput) (string, error)
	FanOutFeedback(ctx context.Context, input *FeedbackFanOutInput)
	Send(ctx context.Context, request *requests.SendNotification) (string, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) (*models.Notification, error)
}
