package entities

import "fmt"

// Key templates are a compatibility contract with existing stored data;
// changing any of them orphans records.

func UserKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func CredentialKey(email string) string {
	return fmt.Sprintf("user_credentials:%s", email)
}

func TherapyRequestKey(requestID string) string {
	return fmt.Sprintf("therapy_request:%s", requestID)
}

func FeedbackKey(userID, feedbackID string) string {
	return fmt.Sprintf("feedback:%s:%s", userID, feedbackID)
}

func PrescriptionKey(prescriptionID string) string {
	return fmt.Sprintf("prescription:%s", prescriptionID)
}

func AppointmentKey(appointmentID string) string {
	return fmt.Sprintf("appointment:%s", appointmentID)
}

func NotificationKey(notificationID string) string {
	return fmt.Sprintf("notification:%s", notificationID)
}

// Index list keys. Each holds a JSON array of entity IDs.

const PendingTherapyRequestsKey = "pending_therapy_requests"

func RoleIndexKey(role string) string {
	return fmt.Sprintf("%ss", role)
}

func PatientTherapyRequestsKey(patientID string) string {
	return fmt.Sprintf("patient_therapy_requests:%s", patientID)
}

func DoctorTherapyRequestsKey(doctorID string) string {
	return fmt.Sprintf("doctor_therapy_requests:%s", doctorID)
}

func UserFeedbackKey(userID string) string {
	return fmt.Sprintf("user_feedback:%s", userID)
}

func UserNotificationsKey(userID string) string {
	return fmt.Sprintf("user_notifications:%s", userID)
}

func PatientPrescriptionsKey(patientID string) string {
	return fmt.Sprintf("patient_prescriptions:%s", patientID)
}

func DoctorPrescriptionsKey(doctorID string) string {
	return fmt.Sprintf("doctor_prescriptions:%s", doctorID)
}

func PatientAppointmentsKey(patientID string) string {
	return fmt.Sprintf("patient_appointments:%s", patientID)
}

func DoctorAppointmentsKey(doctorID string) string {
	return fmt.Sprintf("doctor_appointments:%s", doctorID)
}

func TherapyRequestLockKey(requestID string) string {
	return fmt.Sprintf("lock:therapy_request:%s", requestID)
}
