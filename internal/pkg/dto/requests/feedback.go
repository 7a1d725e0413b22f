package requests

type SubmitFeedback struct {
	UserID          string   `json:"userId" validate:"required"`
	Symptoms        []string `json:"symptoms"`
	PainLevel       int      `json:"painLevel" validate:"gte=0,lte=10"`
	EnergyLevel     int      `json:"energyLevel" validate:"gte=0,lte=10"`
	DigestiveIssues []string `json:"digestiveIssues"`
	SleepQuality    int      `json:"sleepQuality" validate:"gte=0,lte=10"`
	Mood            int      `json:"mood" validate:"gte=0,lte=10"`
	Complications   []string `json:"complications"`
	Notes           string   `json:"notes"`
	Medications     []string `json:"medications"`
	TherapyPhase    string   `json:"therapyPhase"`
}

type ReviewFeedback struct {
	Status              string `json:"status" validate:"omitempty,oneof=pending_review reviewed prescription_updated"`
	DoctorNotes         string `json:"doctorNotes"`
	PrescriptionChanges string `json:"prescriptionChanges"`
	DoctorID            string `json:"doctorId" validate:"required"`
}
