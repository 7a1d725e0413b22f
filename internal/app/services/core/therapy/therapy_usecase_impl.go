package therapy

import (
	"context"
	"fmt"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/app/services/core/notifications"
	"panchkarma-service/internal/app/services/shared/locker"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/requests"
	"panchkarma-service/internal/pkg/exceptions"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// transitionLockTTL bounds how long a crashed accept/reject can keep a
// request locked.
const transitionLockTTL = 10 * time.Second

var urgencyOrder = map[string]int{
	constvars.UrgencyHigh:   3,
	constvars.UrgencyMedium: 2,
	constvars.UrgencyLow:    1,
}

type therapyUsecase struct {
	EntityStore         entities.Store
	NotificationUsecase notifications.NotificationUsecase
	LockerService       locker.Service
	Log                 *zap.Logger
}

func NewTherapyUsecase(
	entityStore entities.Store,
	notificationUsecase notifications.NotificationUsecase,
	lockerService locker.Service,
	logger *zap.Logger,
) TherapyUsecase {
	return &therapyUsecase{
		EntityStore:         entityStore,
		NotificationUsecase: notificationUsecase,
		LockerService:       lockerService,
		Log:                 logger,
	}
}

func (uc *therapyUsecase) Submit(ctx context.Context, request *requests.SubmitTherapyRequest) (string, error) {
	urgency := request.Urgency
	if urgency == "" {
		urgency = constvars.UrgencyMedium
	}
	symptoms := request.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	therapyRequest := &models.TherapyRequest{
		ID:                uuid.NewString(),
		PatientID:         request.PatientID,
		TherapyType:       request.TherapyType,
		Urgency:           urgency,
		Symptoms:          symptoms,
		Notes:             request.Notes,
		PreferredDoctorID: request.PreferredDoctorID,
		Status:            constvars.TherapyRequestStatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	err := uc.EntityStore.PutJSON(ctx, entities.TherapyRequestKey(therapyRequest.ID), therapyRequest)
	if err != nil {
		return "", err
	}
	err = uc.EntityStore.AppendToIndex(ctx, entities.PatientTherapyRequestsKey(request.PatientID), therapyRequest.ID)
	if err != nil {
		return "", err
	}
	err = uc.EntityStore.AppendToIndex(ctx, entities.PendingTherapyRequestsKey, therapyRequest.ID)
	if err != nil {
		return "", err
	}

	uc.NotificationUsecase.NotifyDoctors(ctx, &notifications.DoctorFanOutInput{
		RequestID:         therapyRequest.ID,
		PatientID:         request.PatientID,
		TherapyType:       request.TherapyType,
		Urgency:           urgency,
		PreferredDoctorID: request.PreferredDoctorID,
	})

	uc.Log.Info("therapyUsecase.Submit created therapy request",
		zap.String(constvars.LoggingRequestEntityKey, therapyRequest.ID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)
	return therapyRequest.ID, nil
}

func (uc *therapyUsecase) Accept(ctx context.Context, request *requests.AcceptTherapyRequest) (*models.TherapyRequest, error) {
	unlock, err := uc.lockRequest(ctx, request.RequestID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	therapyRequest, err := uc.loadPendingRequest(ctx, request.RequestID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	therapyRequest.Status = constvars.TherapyRequestStatusAccepted
	therapyRequest.AssignedDoctorID = request.DoctorID
	therapyRequest.ScheduledDate = request.ScheduledDate
	therapyRequest.ScheduledTime = request.ScheduledTime
	therapyRequest.TreatmentPlan = request.TreatmentPlan
	therapyRequest.AcceptedAt = &now

	err = uc.EntityStore.PutJSON(ctx, entities.TherapyRequestKey(request.RequestID), therapyRequest)
	if err != nil {
		return nil, err
	}
	err = uc.EntityStore.RemoveFromIndex(ctx, entities.PendingTherapyRequestsKey, request.RequestID)
	if err != nil {
		return nil, err
	}
	err = uc.EntityStore.AppendToIndex(ctx, entities.DoctorTherapyRequestsKey(request.DoctorID), request.RequestID)
	if err != nil {
		return nil, err
	}

	// The transition is committed; notify best effort.
	_, err = uc.NotificationUsecase.NotifyUser(ctx, &notifications.UserNotificationInput{
		UserID:   therapyRequest.PatientID,
		Type:     constvars.NotificationTypeTherapyAccepted,
		Priority: constvars.UrgencyHigh,
		Message:  fmt.Sprintf("Your %s therapy has been scheduled", therapyRequest.TherapyType),
		Data: map[string]interface{}{
			"requestId":     request.RequestID,
			"doctorId":      request.DoctorID,
			"scheduledDate": request.ScheduledDate,
			"scheduledTime": request.ScheduledTime,
			"therapyType":   therapyRequest.TherapyType,
		},
	})
	if err != nil {
		uc.Log.Error("therapyUsecase.Accept failed to notify patient",
			zap.String(constvars.LoggingRequestEntityKey, request.RequestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("therapyUsecase.Accept accepted therapy request",
		zap.String(constvars.LoggingRequestEntityKey, request.RequestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)
	return therapyRequest, nil
}

func (uc *therapyUsecase) Reject(ctx context.Context, request *requests.RejectTherapyRequest) (*models.TherapyRequest, error) {
	unlock, err := uc.lockRequest(ctx, request.RequestID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	therapyRequest, err := uc.loadPendingRequest(ctx, request.RequestID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	therapyRequest.Status = constvars.TherapyRequestStatusRejected
	therapyRequest.RejectedAt = &now
	therapyRequest.RejectionReason = request.Reason

	err = uc.EntityStore.PutJSON(ctx, entities.TherapyRequestKey(request.RequestID), therapyRequest)
	if err != nil {
		return nil, err
	}
	err = uc.EntityStore.RemoveFromIndex(ctx, entities.PendingTherapyRequestsKey, request.RequestID)
	if err != nil {
		return nil, err
	}

	_, err = uc.NotificationUsecase.NotifyUser(ctx, &notifications.UserNotificationInput{
		UserID:   therapyRequest.PatientID,
		Type:     constvars.NotificationTypeTherapyRejected,
		Priority: constvars.UrgencyHigh,
		Message:  fmt.Sprintf("Your %s therapy request could not be scheduled", therapyRequest.TherapyType),
		Data: map[string]interface{}{
			"requestId":   request.RequestID,
			"doctorId":    request.DoctorID,
			"therapyType": therapyRequest.TherapyType,
			"reason":      request.Reason,
		},
	})
	if err != nil {
		uc.Log.Error("therapyUsecase.Reject failed to notify patient",
			zap.String(constvars.LoggingRequestEntityKey, request.RequestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("therapyUsecase.Reject rejected therapy request",
		zap.String(constvars.LoggingRequestEntityKey, request.RequestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)
	return therapyRequest, nil
}

// lockRequest serializes state transitions per request ID. Contention is
// reported as the same conflict the status guard raises: whoever holds the
// lock is about to take the request.
func (uc *therapyUsecase) lockRequest(ctx context.Context, requestID string) (func(), error) {
	lockKey := entities.TherapyRequestLockKey(requestID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, transitionLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrTherapyRequestNotPending(nil)
	}
	return func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Error("therapyUsecase failed to release request lock",
				zap.String(constvars.LoggingRequestEntityKey, requestID),
				zap.Error(err),
			)
		}
	}, nil
}

func (uc *therapyUsecase) loadPendingRequest(ctx context.Context, requestID string) (*models.TherapyRequest, error) {
	therapyRequest := new(models.TherapyRequest)
	found, err := uc.EntityStore.GetJSON(ctx, entities.TherapyRequestKey(requestID), therapyRequest)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrTherapyRequestNotExist(nil)
	}
	if therapyRequest.Status != constvars.TherapyRequestStatusPending {
		return nil, exceptions.ErrTherapyRequestNotPending(nil)
	}
	return therapyRequest, nil
}

func (uc *therapyUsecase) ListPending(ctx context.Context) ([]*models.TherapyRequest, error) {
	ids, err := uc.EntityStore.ReadIndex(ctx, entities.PendingTherapyRequestsKey)
	if err != nil {
		return nil, err
	}

	requestList := make([]*models.TherapyRequest, 0, len(ids))
	for _, id := range ids {
		therapyRequest := new(models.TherapyRequest)
		found, err := uc.EntityStore.GetJSON(ctx, entities.TherapyRequestKey(id), therapyRequest)
		if err != nil {
			return nil, err
		}
		// Tolerate index entries whose record is gone or already moved on.
		if !found || therapyRequest.Status != constvars.TherapyRequestStatusPending {
			continue
		}
		therapyRequest.PatientInfo = uc.fetchPatientInfo(ctx, therapyRequest.PatientID, false)
		requestList = append(requestList, therapyRequest)
	}

	// Priority queue approximation: urgency desc, then recency desc.
	sort.SliceStable(requestList, func(i, j int) bool {
		if urgencyOrder[requestList[i].Urgency] != urgencyOrder[requestList[j].Urgency] {
			return urgencyOrder[requestList[i].Urgency] > urgencyOrder[requestList[j].Urgency]
		}
		return requestList[i].CreatedAt.After(requestList[j].CreatedAt)
	})

	return requestList, nil
}

func (uc *therapyUsecase) ListForDoctor(ctx context.Context, doctorID string) ([]*models.TherapyRequest, error) {
	ids, err := uc.EntityStore.ReadIndex(ctx, entities.DoctorTherapyRequestsKey(doctorID))
	if err != nil {
		return nil, err
	}

	requestList := make([]*models.TherapyRequest, 0, len(ids))
	for _, id := range ids {
		therapyRequest := new(models.TherapyRequest)
		found, err := uc.EntityStore.GetJSON(ctx, entities.TherapyRequestKey(id), therapyRequest)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		therapyRequest.PatientInfo = uc.fetchPatientInfo(ctx, therapyRequest.PatientID, true)
		requestList = append(requestList, therapyRequest)
	}

	sortByCreatedAtDesc(requestList)
	return requestList, nil
}

func (uc *therapyUsecase) ListForPatient(ctx context.Context, patientID string) ([]*models.TherapyRequest, error) {
	ids, err := uc.EntityStore.ReadIndex(ctx, entities.PatientTherapyRequestsKey(patientID))
	if err != nil {
		return nil, err
	}

	requestList := make([]*models.TherapyRequest, 0, len(ids))
	for _, id := range ids {
		therapyRequest := new(models.TherapyRequest)
		found, err := uc.EntityStore.GetJSON(ctx, entities.TherapyRequestKey(id), therapyRequest)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		if therapyRequest.AssignedDoctorID != "" {
			therapyRequest.DoctorInfo = uc.fetchDoctorInfo(ctx, therapyRequest.AssignedDoctorID)
		}
		requestList = append(requestList, therapyRequest)
	}

	sortByCreatedAtDesc(requestList)
	return requestList, nil
}

// fetchPatientInfo joins the minimal patient view; withPhone selects the
// doctor-facing variant. A missing profile yields nil, not an error.
func (uc *therapyUsecase) fetchPatientInfo(ctx context.Context, patientID string, withPhone bool) *models.PatientInfo {
	user := new(models.User)
	found, err := uc.EntityStore.GetJSON(ctx, entities.UserKey(patientID), user)
	if err != nil || !found {
		return nil
	}
	info := &models.PatientInfo{
		Name:        user.Name,
		TherapyPlan: user.TherapyPlan,
	}
	if withPhone {
		info.Phone = user.Phone
	} else {
		info.Age = user.Age
	}
	return info
}

func (uc *therapyUsecase) fetchDoctorInfo(ctx context.Context, doctorID string) *models.DoctorInfo {
	user := new(models.User)
	found, err := uc.EntityStore.GetJSON(ctx, entities.UserKey(doctorID), user)
	if err != nil || !found {
		return nil
	}
	return &models.DoctorInfo{
		Name:           user.Name,
		Specialization: user.Specialization,
		Phone:          user.Phone,
	}
}

func sortByCreatedAtDesc(requestList []*models.TherapyRequest) {
	sort.SliceStable(requestList, func(i, j int) bool {
		return requestList[i].CreatedAt.After(requestList[j].CreatedAt)
	})
}
