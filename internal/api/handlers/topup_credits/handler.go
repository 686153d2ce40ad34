package topup_credits

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
	msgInvalidHours       = "число часов должно быть положительным"
	msgAccessDenied       = "нет доступа к балансу другого пользователя"
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

// Handle POST /api/v1/users/{userId}/credits/topup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	targetUserID := mux.Vars(r)["userId"]
	requesterID := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.IsAdminFromContext(r.Context())

	if !isAdmin && targetUserID != requesterID {
		h.logger.Warn("POST /users/{userId}/credits/topup - Access denied: user_id=%s, target=%s",
			requesterID, targetUserID)
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		return
	}

	var req models.TopupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/{userId}/credits/topup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Topup(r.Context(), targetUserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, creditsService.ErrUnknownPlan):
			h.logger.Warn("POST /users/{userId}/credits/topup - Unknown plan: user_id=%s, plan=%s",
				targetUserID, req.PlanID)
			handlers.RespondBadRequest(w, msgUnknownPlan)

		case errors.Is(err, creditsService.ErrInvalidInput):
			h.logger.Warn("POST /users/{userId}/credits/topup - Invalid hours: user_id=%s, hours=%d",
				targetUserID, req.Hours)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("POST /users/{userId}/credits/topup - Failed: user_id=%s, error=%v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/{userId}/credits/topup - Topped up: user_id=%s, hours=%d, amount=%d KRW",
		targetUserID, result.Hours, result.AmountKRW)
	handlers.RespondJSON(w, http.StatusOK, result)
}
