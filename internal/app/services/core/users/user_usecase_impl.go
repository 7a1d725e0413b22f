package users

import (
	"context"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/responses"
	"panchkarma-service/internal/pkg/exceptions"
	"sort"

	"go.uber.org/zap"
)

type userUsecase struct {
	EntityStore entities.Store
	Log         *zap.Logger
}

func NewUserUsecase(entityStore entities.Store, logger *zap.Logger) UserUsecase {
	return &userUsecase{
		EntityStore: entityStore,
		Log:         logger,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user := new(models.User)
	found, err := uc.EntityStore.GetJSON(ctx, entities.UserKey(userID), user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}

// ListPatientsForDoctor builds the doctor's roster from every patient the
// doctor has a therapy request or prescription with, each joined with the
// patient's latest feedback.
func (uc *userUsecase) ListPatientsForDoctor(ctx context.Context, doctorID string) ([]*responses.DoctorPatient, error) {
	patientIDs, err := uc.collectPatientIDs(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	roster := make([]*responses.DoctorPatient, 0, len(patientIDs))
	for _, patientID := range patientIDs {
		patient := new(models.User)
		found, err := uc.EntityStore.GetJSON(ctx, entities.UserKey(patientID), patient)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		entry := &responses.DoctorPatient{User: *patient}
		feedbackIDs, err := uc.EntityStore.ReadIndex(ctx, entities.UserFeedbackKey(patientID))
		if err != nil {
			return nil, err
		}
		entry.TotalFeedbacks = len(feedbackIDs)
		if len(feedbackIDs) > 0 {
			recent := new(models.Feedback)
			lastID := feedbackIDs[len(feedbackIDs)-1]
			found, err := uc.EntityStore.GetJSON(ctx, entities.FeedbackKey(patientID, lastID), recent)
			if err != nil {
				return nil, err
			}
			if found {
				entry.RecentFeedback = recent
			}
		}

		roster = append(roster, entry)
	}

	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].Name < roster[j].Name
	})

	uc.Log.Debug("userUsecase.ListPatientsForDoctor built roster",
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int("patient_count", len(roster)),
	)
	return roster, nil
}

func (uc *userUsecase) collectPatientIDs(ctx context.Context, doctorID string) ([]string, error) {
	patientIDs := []string{}
	seen := make(map[string]bool)

	requestIDs, err := uc.EntityStore.ReadIndex(ctx, entities.DoctorTherapyRequestsKey(doctorID))
	if err != nil {
		return nil, err
	}
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

	prescriptionIDs, err := uc.EntityStore.ReadIndex(ctx, entities.DoctorPrescriptionsKey(doctorID))
	if err != nil {
		return nil, err
	}
	for _, prescriptionID := range prescriptionIDs {
		prescription := new(models.Prescription)
		found, err := uc.EntityStore.GetJSON(ctx, entities.PrescriptionKey(prescriptionID), prescription)
		if err != nil {
			return nil, err
		}
		if !found || seen[prescription.PatientID] {
			continue
		}
		seen[prescription.PatientID] = true
		patientIDs = append(patientIDs, prescription.PatientID)
	}

	return patientIDs, nil
}
