package appointments

import (
	"context"
	"fmt"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/requests"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	EntityStore entities.Store
	Log         *zap.Logger
}

func NewAppointmentUsecase(entityStore entities.Store, logger *zap.Logger) AppointmentUsecase {
	return &appointmentUsecase{
		EntityStore: entityStore,
		Log:         logger,
	}
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (string, error) {
	appointmentType := request.Type
	if appointmentType == "" {
		appointmentType = constvars.AppointmentTypeDefault
	}

	appointment := &models.Appointment{
		ID:        uuid.NewString(),
		PatientID: request.PatientID,
		DoctorID:  request.DoctorID,
		Date:      request.Date,
		Time:      request.Time,
		Type:      appointmentType,
		Status:    constvars.AppointmentStatusScheduled,
		Notes:     request.Notes,
		CreatedAt: time.Now().UTC(),
	}

	err := uc.EntityStore.PutJSON(ctx, entities.AppointmentKey(appointment.ID), appointment)
	if err != nil {
		return "", err
	}
	err = uc.EntityStore.AppendToIndex(ctx, entities.PatientAppointmentsKey(request.PatientID), appointment.ID)
	if err != nil {
		return "", err
	}
	err = uc.EntityStore.AppendToIndex(ctx, entities.DoctorAppointmentsKey(request.DoctorID), appointment.ID)
	if err != nil {
		return "", err
	}

	uc.Log.Info("appointmentUsecase.Create stored appointment",
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)
	return appointment.ID, nil
}

func (uc *appointmentUsecase) ListForPatient(ctx context.Context, patientID string) ([]*models.Appointment, error) {
	return uc.list(ctx, entities.PatientAppointmentsKey(patientID))
}

func (uc *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID string) ([]*models.Appointment, error) {
	return uc.list(ctx, entities.DoctorAppointmentsKey(doctorID))
}

func (uc *appointmentUsecase) list(ctx context.Context, indexKey string) ([]*models.Appointment, error) {
	ids, err := uc.EntityStore.ReadIndex(ctx, indexKey)
	if err != nil {
		return nil, err
	}

	appointmentList := make([]*models.Appointment, 0, len(ids))
	for _, id := range ids {
		appointment := new(models.Appointment)
		found, err := uc.EntityStore.GetJSON(ctx, entities.AppointmentKey(id), appointment)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		appointmentList = append(appointmentList, appointment)
	}

	// Chronological: date then time, both stored as sortable strings
	// (YYYY-MM-DD / HH:MM).
	sort.SliceStable(appointmentList, func(i, j int) bool {
		left := fmt.Sprintf("%s %s", appointmentList[i].Date, appointmentList[i].Time)
		right := fmt.Sprintf("%s %s", appointmentList[j].Date, appointmentList[j].Time)
		return left < right
	})

	return appointmentList, nil
}
