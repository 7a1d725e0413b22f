package notifications

import (
	"context"
	"fmt"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/requests"
	"panchkarma-service/internal/pkg/exceptions"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type notificationUsecase struct {
	EntityStore entities.Store
	Log         *zap.Logger
}

func NewNotificationUsecase(entityStore entities.Store, logger *zap.Logger) NotificationUsecase {
	return &notificationUsecase{
		EntityStore: entityStore,
		Log:         logger,
	}
}

// persist writes the notification record and appends it to the recipient's
// index. Both writes target recipient-owned keys, so concurrent fan-outs
// to different users never contend.
func (uc *notificationUsecase) persist(ctx context.Context, notification *models.Notification) error {
	err := uc.EntityStore.PutJSON(ctx, entities.NotificationKey(notification.ID), notification)
	if err != nil {
		return err
	}
	return uc.EntityStore.AppendToIndex(ctx, entities.UserNotificationsKey(notification.UserID), notification.ID)
}

func (uc *notificationUsecase) NotifyDoctors(ctx context.Context, input *DoctorFanOutInput) {
	doctorIDs, err := uc.EntityStore.ReadIndex(ctx, entities.RoleIndexKey(constvars.RoleTypeDoctor))
	if err != nil {
		uc.Log.Error("notificationUsecase.NotifyDoctors failed to read doctor roster",
			zap.String(constvars.LoggingRequestEntityKey, input.RequestID),
			zap.Error(err),
		)
		return
	}

	for _, doctorID := range doctorIDs {
		if input.PreferredDoctorID != "" && doctorID != input.PreferredDoctorID {
			continue
		}

		notification := &models.Notification{
			ID:       uuid.NewString(),
			UserID:   doctorID,
			Type:     constvars.NotificationTypeTherapyRequest,
			Priority: input.Urgency,
			Message:  fmt.Sprintf("New %s therapy request from patient", input.TherapyType),
			Data: map[string]interface{}{
				"requestId":   input.RequestID,
				"patientId":   input.PatientID,
				"therapyType": input.TherapyType,
				"urgency":     input.Urgency,
			},
			Timestamp: time.Now().UTC(),
			Read:      false,
		}

		if err := uc.persist(ctx, notification); err != nil {
			// Best effort per recipient; the request itself already exists.
			uc.Log.Error("notificationUsecase.NotifyDoctors failed to notify doctor",
				zap.String(constvars.LoggingDoctorIDKey, doctorID),
				zap.String(constvars.LoggingRequestEntityKey, input.RequestID),
				zap.Error(err),
			)
		}
	}
}

func (uc *notificationUsecase) NotifyUser(ctx context.Context, input *UserNotificationInput) (string, error) {
	notification := &models.Notification{
		ID:         uuid.NewString(),
		UserID:     input.UserID,
		Type:       input.Type,
		Priority:   input.Priority,
		Message:    input.Message,
		FromUserID: input.FromUserID,
		Data:       input.Data,
		Timestamp:  time.Now().UTC(),
		Read:       false,
	}

	if err := uc.persist(ctx, notification); err != nil {
		return "", err
	}
	return notification.ID, nil
}

func (uc *notificationUsecase) FanOutFeedback(ctx context.Context, input *FeedbackFanOutInput) {
	doctorIDs, err := uc.EntityStore.ReadIndex(ctx, entities.RoleIndexKey(constvars.RoleTypeDoctor))
	if err != nil {
		uc.Log.Error("notificationUsecase.FanOutFeedback failed to read doctor roster",
			zap.String(constvars.LoggingFeedbackIDKey, input.FeedbackID),
			zap.Error(err),
		)
		return
	}

	hasComplications := len(input.Complications) > 0
	priority := constvars.UrgencyMedium
	if hasComplications {
		priority = constvars.UrgencyHigh
	}

	patientName := input.PatientName
	if patientName == "" {
		patientName = "patient"
	}

	symptoms := input.Symptoms
	if len(symptoms) > constvars.NotificationMaxSymptoms {
		symptoms = symptoms[:constvars.NotificationMaxSymptoms]
	}

	for _, doctorID := range doctorIDs {
		notification := &models.Notification{
			ID:       uuid.NewString(),
			UserID:   doctorID,
			Type:     constvars.NotificationTypePatientFeedback,
			Priority: priority,
			Message:  fmt.Sprintf("New health feedback from %s", patientName),
			Data: map[string]interface{}{
				"feedbackId":       input.FeedbackID,
				"patientId":        input.PatientID,
				"patientName":      input.PatientName,
				"hasComplications": hasComplications,
				"painLevel":        input.PainLevel,
				"symptoms":         symptoms,
			},
			Timestamp: time.Now().UTC(),
			Read:      false,
		}

		if err := uc.persist(ctx, notification); err != nil {
			uc.Log.Error("notificationUsecase.FanOutFeedback failed to notify doctor",
				zap.String(constvars.LoggingDoctorIDKey, doctorID),
				zap.String(constvars.LoggingFeedbackIDKey, input.FeedbackID),
				zap.Error(err),
			)
		}
	}
}

func (uc *notificationUsecase) Send(ctx context.Context, request *requests.SendNotification) (string, error) {
	notificationType := request.Type
	if notificationType == "" {
		notificationType = constvars.NotificationTypeInfo
	}
	priority := request.Priority
	if priority == "" {
		priority = constvars.UrgencyMedium
	}

	return uc.NotifyUser(ctx, &UserNotificationInput{
		UserID:     request.UserID,
		Type:       notificationType,
		Priority:   priority,
		Message:    request.Message,
		FromUserID: request.FromUserID,
	})
}

func (uc *notificationUsecase) ListForUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	ids, err := uc.EntityStore.ReadIndex(ctx, entities.UserNotificationsKey(userID))
	if err != nil {
		return nil, err
	}

	notifications := make([]*models.Notification, 0, len(ids))
	for _, id := range ids {
		notification := new(models.Notification)
		found, err := uc.EntityStore.GetJSON(ctx, entities.NotificationKey(id), notification)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		notifications = append(notifications, notification)
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})

	return notifications, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, userID, notificationID string) (*models.Notification, error) {
	notification := new(models.Notification)
	found, err := uc.EntityStore.GetJSON(ctx, entities.NotificationKey(notificationID), notification)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrNotificationNotExist(nil)
	}
	if notification.UserID != userID {
		return nil, exceptions.ErrIdentityMismatch(nil)
	}

	notification.Read = true
	if err := uc.EntityStore.PutJSON(ctx, entities.NotificationKey(notificationID), notification); err != nil {
		return nil, err
	}
	return notification, nil
}
