package activate_plan

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	"github.com/wang2185/daylawyer-booking/internal/api/middleware"
	creditsService "github.com/wang2185/daylawyer-booking/internal/service/credits"
	"github.com/wang2185/daylawyer-booking/internal/service/credits/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownPlan        = "неизвестный тарифный план"
	msgAccessDenied       = "нет доступа к плану другого пользователя"
)

type Handler struct {
	service CreditsService
	logger  Logger
}

func NewHandler(service CreditsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/{userId}/plan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	targetUserID := mux.Vars(r)["userId"]
	requesterID := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.IsAdminFromContext(r.Context())

	if !isAdmin && targetUserID != requesterID {
		h.logger.Warn("POST /users/{userId}/plan - Access denied: user_id=%s, target=%s",
			requesterID, targetUserID)
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		return
	}

	var req models.ActivatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/{userId}/plan - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ActivatePlan(r.Context(), targetUserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, creditsService.ErrUnknownPlan):
			h.logger.Warn("POST /users/{userId}/plan - Unknown plan: user_id=%s, plan=%s",
				targetUserID, req.PlanID)
			handlers.RespondBadRequest(w, msgUnknownPlan)

		default:
			h.logger.Error("POST /users/{userId}/plan - Failed: user_id=%s, error=%v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/{userId}/plan - Activated: user_id=%s, plan=%s, hours=%d",
		targetUserID, result.PlanID, result.Hours)
	handlers.RespondJSON(w, http.StatusOK, result)
}
