package feedbacks

import (
	"context"
	"encoding/json"
	"net/http"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/requests"
	"panchkarma-service/internal/pkg/dto/responses"
	"panchkarma-service/internal/pkg/exceptions"
	"panchkarma-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeedbackController struct {
	Log             *zap.Logger
	FeedbackUsecase FeedbackUsecase
}

func NewFeedbackController(logger *zap.Logger, feedbackUsecase FeedbackUsecase) *FeedbackController {
	return &FeedbackController{
		Log:             logger,
		FeedbackUsecase: feedbackUsecase,
	}
}

func (ctrl *FeedbackController) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitFeedback)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := utils.RequireIdentity(r, request.UserID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	feedbackID, err := ctrl.FeedbackUsecase.Submit(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.FeedbackCreated{Success: true, FeedbackID: feedbackID})
}

func (ctrl *FeedbackController) GetUserFeedback(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "userId"))
		return
	}

	// Patients read their own history; doctors read any patient's.
	if err := utils.RequireIdentity(r, userID); err != nil {
		if roleErr := utils.RequireRole(r, constvars.RoleTypeDoctor); roleErr != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	feedbackList, err := ctrl.FeedbackUsecase.ListForUser(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.FeedbackList{Feedback: feedbackList})
}

func (ctrl *FeedbackController) ReviewFeedback(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	feedbackID := chi.URLParam(r, "feedbackId")
	if userID == "" || feedbackID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "userId/feedbackId"))
		return
	}

	request := new(requests.ReviewFeedback)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := utils.RequireIdentity(r, request.DoctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	feedback, err := ctrl.FeedbackUsecase.Review(ctx, userID, feedbackID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.FeedbackUpdated{Success: true, Feedback: feedback})
}

func (ctrl *FeedbackController) GetPendingFeedback(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorId")
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "doctorId"))
		return
	}

	if err := utils.RequireIdentity(r, doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	feedbackList, err := ctrl.FeedbackUsecase.ListPendingForDoctor(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.FeedbackList{Feedback: feedbackList})
}
