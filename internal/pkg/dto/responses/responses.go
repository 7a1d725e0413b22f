package responses

import "panchkarma-service/internal/app/models"

type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Session struct {
	AccessToken string `json:"access_token"`
}

type SignUp struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

type SignIn struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
	Session *Session     `json:"session"`
}

type UserProfile struct {
	User *models.User `json:"user"`
}

type TherapyRequestCreated struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId"`
}

type TherapyRequestUpdated struct {
	Success        bool                   `json:"success"`
	TherapyRequest *models.TherapyRequest `json:"therapyRequest"`
}

type TherapyRequestList struct {
	Requests []*models.TherapyRequest `json:"requests"`
}

type FeedbackCreated struct {
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedbackId"`
}

type FeedbackUpdated struct {
	Success  bool             `json:"success"`
	Feedback *models.Feedback `json:"feedback"`
}

type FeedbackList struct {
	Feedback []*models.Feedback `json:"feedback"`
}

type PrescriptionCreated struct {
	Success        bool   `json:"success"`
	PrescriptionID string `json:"prescriptionId"`
}

type PrescriptionList struct {
	Prescriptions []*models.Prescription `json:"prescriptions"`
}

type AppointmentCreated struct {
	Success       bool   `json:"success"`
	AppointmentID string `json:"appointmentId"`
}

type AppointmentList struct {
	Appointments []*models.Appointment `json:"appointments"`
}

type NotificationSent struct {
	Success        bool   `json:"success"`
	NotificationID string `json:"notificationId"`
}

type NotificationList struct {
	Notifications []*models.Notification `json:"notifications"`
}

type NotificationUpdated struct {
	Success      bool                 `json:"success"`
	Notification *models.Notification `json:"notification"`
}

// DoctorPatient is a patient roster entry with the latest feedback joined.
type DoctorPatient struct {
	models.User
	RecentFeedback *models.Feedback `json:"recentFeedback"`
	TotalFeedbacks int              `json:"totalFeedbacks"`
}

type DoctorPatientList struct {
	Patients []*DoctorPatient `json:"patients"`
}
