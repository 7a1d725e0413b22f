package feedbacks

import (
	"context"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/pkg/dto/requests"
)

type FeedbackUsecase interface {
	Submit(ctx context.Context, request *requests.SubmitFeedback) (string, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Feedback, error)
	Review(ctx context.Context, userID, feedbackID string, request *requests.ReviewFeedback) (*models.Feedback, error)
	// ListPendingForDoctor returns unreviewed feedback from every patient
	// the doctor has an accepted therapy request with.
	ListPendingForDoctor(ctx context.Context, doctorID string) ([]*models.Feedback, error)
}
