package feedbacks

import (
	"context"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/app/services/core/notifications"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/requests"
	"panchkarma-service/internal/pkg/exceptions"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type feedbackUsecase struct {
	EntityStore         entities.Store
	NotificationUsecase notifications.NotificationUsecase
	Log                 *zap.Logger
}

func NewFeedbackUsecase(
	entityStore entities.Store,
	notificationUsecase notifications.NotificationUsecase,
	logger *zap.Logger,
) FeedbackUsecase {
	return &feedbackUsecase{
		EntityStore:         entityStore,
		NotificationUsecase: notificationUsecase,
		Log:                 logger,
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func (uc *feedbackUsecase) Submit(ctx context.Context, request *requests.SubmitFeedback) (string, error) {
	feedback := &models.Feedback{
		ID:              uuid.NewString(),
		UserID:          request.UserID,
		Timestamp:       time.Now().UTC(),
		Symptoms:        emptyIfNil(request.Symptoms),
		PainLevel:       request.PainLevel,
		EnergyLevel:     request.EnergyLevel,
		DigestiveIssues: emptyIfNil(request.DigestiveIssues),
		SleepQuality:    request.SleepQuality,
		Mood:            request.Mood,
		Complications:   emptyIfNil(request.Complications),
		Notes:           request.Notes,
		Medications:     emptyIfNil(request.Medications),
		TherapyPhase:    request.TherapyPhase,
		Status:          constvars.FeedbackStatusPendingReview,
	}

	err := uc.EntityStore.PutJSON(ctx, entities.FeedbackKey(request.UserID, feedback.ID), feedback)
	if err != nil {
		return "", err
	}
	err = uc.EntityStore.AppendToIndex(ctx, entities.UserFeedbackKey(request.UserID), feedback.ID)
	if err != nil {
		return "", err
	}

	patientName := ""
	patient := new(models.User)
	if found, err := uc.EntityStore.GetJSON(ctx, entities.UserKey(request.UserID), patient); err == nil && found {
		patientName = patient.Name
	}

	uc.NotificationUsecase.FanOutFeedback(ctx, &notifications.FeedbackFanOutInput{
		FeedbackID:    feedback.ID,
		PatientID:     request.UserID,
		PatientName:   patientName,
		PainLevel:     request.PainLevel,
		Symptoms:      feedback.Symptoms,
		Complications: feedback.Complications,
	})

	uc.Log.Info("feedbackUsecase.Submit stored feedback",
		zap.String(constvars.LoggingFeedbackIDKey, feedback.ID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)
	return feedback.ID, nil
}

func (uc *feedbackUsecase) ListForUser(ctx context.Context, userID string) ([]*models.Feedback, error) {
	ids, err := uc.EntityStore.ReadIndex(ctx, entities.UserFeedbackKey(userID))
	if err != nil {
		return nil, err
	}

	feedbackList := make([]*models.Feedback, 0, len(ids))
	for _, id := range ids {
		feedback := new(models.Feedback)
		found, err := uc.EntityStore.GetJSON(ctx, entities.FeedbackKey(userID, id), feedback)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		feedbackList = append(feedbackList, feedback)
	}

	sortByTimestampDesc(feedbackList)
	return feedbackList, nil
}

func (uc *feedbackUsecase) Review(ctx context.Context, userID, feedbackID string, request *requests.ReviewFeedback) (*models.Feedback, error) {
	feedback := new(models.Feedback)
	found, err := uc.EntityStore.GetJSON(ctx, entities.FeedbackKey(userID, feedbackID), feedback)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrFeedbackNotExist(nil)
	}

	// Absent fields keep their prior values.
	if request.Status != "" {
		feedback.Status = request.Status
	}
	if request.DoctorNotes != "" {
		feedback.DoctorNotes = request.DoctorNotes
	}
	if request.PrescriptionChanges != "" {
		feedback.PrescriptionChanges = request.PrescriptionChanges
	}
	now := time.Now().UTC()
	feedback.ReviewedAt = &now
	feedback.ReviewedBy = request.DoctorID

	err = uc.EntityStore.PutJSON(ctx, entities.FeedbackKey(userID, feedbackID), feedback)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("feedbackUsecase.Review updated feedback",
		zap.String(constvars.LoggingFeedbackIDKey, feedbackID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)
	return feedback, nil
}

func (uc *feedbackUsecase) ListPendingForDoctor(ctx context.Context, doctorID string) ([]*models.Feedback, error) {
	requestIDs, err := uc.EntityStore.ReadIndex(ctx, entities.DoctorTherapyRequestsKey(doctorID))
	if err != nil {
		return nil, err
	}

	patientIDs := make([]string, 0, len(requestIDs))
	seen := make(map[string]bool)
	for _, requestID := range requestIDs {
		therapyRequest := new(models.TherapyRequest)
		found, err := uc.EntityStore.GetJSON(ctx, entities.TherapyRequestKey(requestID), therapyRequest)
		if err != nil {
			return nil, err
		}
		if !found || seen[therapyRequest.PatientID] {
			continue
		}
		seen[therapyRequest.PatientID] = true
		patientIDs = append(patientIDs, therapyRequest.PatientID)
	}

	pendingFeedback := []*models.Feedback{}
	for _, patientID := range patientIDs {
		feedbackIDs, err := uc.EntityStore.ReadIndex(ctx, entities.UserFeedbackKey(patientID))
		if err != nil {
			return nil, err
		}

		var patientInfo *models.PatientInfo
		patient := new(models.User)
		if found, err := uc.EntityStore.GetJSON(ctx, entities.UserKey(patientID), patient); err == nil && found {
			patientInfo = &models.PatientInfo{
				Name:        patient.Name,
				Phone:       patient.Phone,
				TherapyPlan: patient.TherapyPlan,
			}
		}

		for _, feedbackID := range feedbackIDs {
			feedback := new(models.Feedback)
			found, err := uc.EntityStore.GetJSON(ctx, entities.FeedbackKey(patientID, feedbackID), feedback)
			if err != nil {
				return nil, err
			}
			if !found || feedback.Status != constvars.FeedbackStatusPendingReview {
				continue
			}
			feedback.PatientInfo = patientInfo
			pendingFeedback = append(pendingFeedback, feedback)
		}
	}

	sortByTimestampDesc(pendingFeedback)
	return pendingFeedback, nil
}

func sortByTimestampDesc(feedbackList []*models.Feedback) {
	sort.SliceStable(feedbackList, func(i, j int) bool {
		return feedbackList[i].Timestamp.After(feedbackList[j].Timestamp)
	})
}
