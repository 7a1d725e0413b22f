package requests

type CreateAppointment struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
}
