package constvars

type contextKey string

const (
	ContextRequestIDKey contextKey = "request_id"
	ContextUserIDKey    contextKey = "user_id"
	ContextUserRoleKey  contextKey = "user_role"
)

const (
	RoleTypePatient = "patient"
	RoleTypeDoctor  = "doctor"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

const (
	TherapyRequestStatusPending  = "pending"
	TherapyRequestStatusAccepted = "accepted"
	TherapyRequestStatusRejected = "rejected"
)

const (
	FeedbackStatusPendingReview       = "pending_review"
	FeedbackStatusReviewed            = "reviewed"
	FeedbackStatusPrescriptionUpdated = "prescription_updated"
)

const (
	PrescriptionStatusActive   = "active"
	AppointmentStatusScheduled = "scheduled"
	AppointmentTypeDefault     = "consultation"
)

const (
	NotificationTypeTherapyRequest      = "therapy_request"
	NotificationTypeTherapyAccepted     = "therapy_accepted"
	NotificationTypeTherapyRejected     = "therapy_rejected"
	NotificationTypePatientFeedback     = "patient_feedback"
	NotificationTypePrescriptionUpdated = "prescription_updated"
	NotificationTypeInfo                = "info"
)

// Notification payloads carry at most this many symptoms; the full list
// stays on the feedback record.
const NotificationMaxSymptoms = 3
