package prescriptions

import (
	"context"
	"fmt"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/app/services/core/notifications"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/requests"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	EntityStore         entities.Store
	NotificationUsecase notifications.NotificationUsecase
	Log                 *zap.Logger
}

func NewPrescriptionUsecase(
	entityStore entities.Store,
	notificationUsecase notifications.NotificationUsecase,
	logger *zap.Logger,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		EntityStore:         entityStore,
		NotificationUsecase: notificationUsecase,
		Log:                 logger,
	}
}

func (uc *prescriptionUsecase) Create(ctx context.Context, request *requests.CreatePrescription) (string, error) {
	now := time.Now().UTC()
	prescription := &models.Prescription{
		ID:           uuid.NewString(),
		PatientID:    request.PatientID,
		DoctorID:     request.DoctorID,
		Medications:  request.Medications,
		Instructions: request.Instructions,
		Duration:     request.Duration,
		Notes:        request.Notes,
		FeedbackID:   request.FeedbackID,
		Status:       constvars.PrescriptionStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.EntityStore.PutJSON(ctx, entities.PrescriptionKey(prescription.ID), prescription)
	if err != nil {
		return "", err
	}
	err = uc.EntityStore.AppendToIndex(ctx, entities.PatientPrescriptionsKey(request.PatientID), prescription.ID)
	if err != nil {
		return "", err
	}
	err = uc.EntityStore.AppendToIndex(ctx, entities.DoctorPrescriptionsKey(request.DoctorID), prescription.ID)
	if err != nil {
		return "", err
	}

	doctorName := "Doctor"
	doctor := new(models.User)
	if found, err := uc.EntityStore.GetJSON(ctx, entities.UserKey(request.DoctorID), doctor); err == nil && found {
		doctorName = doctor.Name
	}

	_, err = uc.NotificationUsecase.NotifyUser(ctx, &notifications.UserNotificationInput{
		UserID:   request.PatientID,
		Type:     constvars.NotificationTypePrescriptionUpdated,
		Priority: constvars.UrgencyHigh,
		Message:  fmt.Sprintf("New prescription from Dr. %s", doctorName),
		Data: map[string]interface{}{
			"prescriptionId":  prescription.ID,
			"doctorId":        request.DoctorID,
			"doctorName":      doctorName,
			"medicationCount": len(request.Medications),
		},
	})
	if err != nil {
		uc.Log.Error("prescriptionUsecase.Create failed to notify patient",
			zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
			zap.Error(err),
		)
	}

	// A prescription written against a feedback record closes the review
	// loop; a missing feedback record is tolerated.
	if request.FeedbackID != "" {
		uc.linkFeedback(ctx, prescription)
	}

	uc.Log.Info("prescriptionUsecase.Create stored prescription",
		zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)
	return prescription.ID, nil
}

func (uc *prescriptionUsecase) linkFeedback(ctx context.Context, prescription *models.Prescription) {
	feedbackKey := entities.FeedbackKey(prescription.PatientID, prescription.FeedbackID)
	feedback := new(models.Feedback)
	found, err := uc.EntityStore.GetJSON(ctx, feedbackKey, feedback)
	if err != nil || !found {
		if err != nil {
			uc.Log.Error("prescriptionUsecase.linkFeedback failed to load feedback",
				zap.String(constvars.LoggingFeedbackIDKey, prescription.FeedbackID),
				zap.Error(err),
			)
		}
		return
	}

	now := time.Now().UTC()
	feedback.Status = constvars.FeedbackStatusReviewed
	feedback.PrescriptionID = prescription.ID
	feedback.ReviewedAt = &now
	feedback.ReviewedBy = prescription.DoctorID

	if err := uc.EntityStore.PutJSON(ctx, feedbackKey, feedback); err != nil {
		uc.Log.Error("prescriptionUsecase.linkFeedback failed to update feedback",
			zap.String(constvars.LoggingFeedbackIDKey, prescription.FeedbackID),
			zap.Error(err),
		)
	}
}

func (uc *prescriptionUsecase) ListForPatient(ctx context.Context, patientID string) ([]*models.Prescription, error) {
	ids, err := uc.EntityStore.ReadIndex(ctx, entities.PatientPrescriptionsKey(patientID))
	if err != nil {
		return nil, err
	}

	prescriptionList := make([]*models.Prescription, 0, len(ids))
	for _, id := range ids {
		prescription := new(models.Prescription)
		found, err := uc.EntityStore.GetJSON(ctx, entities.PrescriptionKey(id), prescription)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		doctor := new(models.User)
		if found, err := uc.EntityStore.GetJSON(ctx, entities.UserKey(prescription.DoctorID), doctor); err == nil && found {
			prescription.DoctorInfo = &models.DoctorInfo{
				Name:           doctor.Name,
				Specialization: doctor.Specialization,
			}
		}
		prescriptionList = append(prescriptionList, prescription)
	}

	sortByCreatedAtDesc(prescriptionList)
	return prescriptionList, nil
}

func (uc *prescriptionUsecase) ListForDoctor(ctx context.Context, doctorID string) ([]*models.Prescription, error) {
	ids, err := uc.EntityStore.ReadIndex(ctx, entities.DoctorPrescriptionsKey(doctorID))
	if err != nil {
		return nil, err
	}

	prescriptionList := make([]*models.Prescription, 0, len(ids))
	for _, id := range ids {
		prescription := new(models.Prescription)
		found, err := uc.EntityStore.GetJSON(ctx, entities.PrescriptionKey(id), prescription)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		patient := new(models.User)
		if found, err := uc.EntityStore.GetJSON(ctx, entities.UserKey(prescription.PatientID), patient); err == nil && found {
			prescription.PatientInfo = &models.PatientInfo{
				Name:        patient.Name,
				Phone:       patient.Phone,
				TherapyPlan: patient.TherapyPlan,
			}
		}
		prescriptionList = append(prescriptionList, prescription)
	}

	sortByCreatedAtDesc(prescriptionList)
	return prescriptionList, nil
}

func sortByCreatedAtDesc(prescriptionList []*models.Prescription) {
	sort.SliceStable(prescriptionList, func(i, j int) bool {
		return prescriptionList[i].CreatedAt.After(prescriptionList[j].CreatedAt)
	})
}
