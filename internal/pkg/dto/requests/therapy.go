package requests

type SubmitTherapyRequest struct {
	PatientID         string   `json:"patientId" validate:"required"`
	TherapyType       string   `json:"therapyType" validate:"required"`
	Urgency           string   `json:"urgency" validate:"omitempty,oneof=low medium high"`
	Symptoms          []string `json:"symptoms"`
	Notes             string   `json:"notes"`
	PreferredDoctorID string   `json:"preferredDoctorId"`
}

type AcceptTherapyRequest struct {
	RequestID     string `json:"requestId" validate:"required"`
	DoctorID      string `json:"doctorId" validate:"required"`
	ScheduledDate string `json:"scheduledDate" validate:"required"`
	ScheduledTime string `json:"scheduledTime" validate:"required"`
	TreatmentPlan string `json:"treatmentPlan"`
}

type RejectTherapyRequest struct {
	RequestID string `json:"requestId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Reason    string `json:"reason"`
}
