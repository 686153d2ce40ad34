package adjust_credits

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	creditsService "github.com/wang2185/daylawyer-booking/internal/service/credits"
	"github.com/wang2185/daylawyer-booking/internal/service/credits/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDelta       = "некорректная величина корректировки"
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

// Handle POST /api/v1/users/{userId}/credits/adjust (админ)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req models.AdjustRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/{userId}/credits/adjust - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Adjust(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, creditsService.ErrInvalidInput):
			h.logger.Warn("POST /users/{userId}/credits/adjust - Invalid delta: user_id=%s, delta=%d",
				userID, req.Delta)
			handlers.RespondBadRequest(w, msgInvalidDelta)

		default:
			h.logger.Error("POST /users/{userId}/credits/adjust - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/{userId}/credits/adjust - Adjusted: user_id=%s, delta=%d, balance=%d",
		userID, req.Delta, result.Hours)
	handlers.RespondJSON(w, http.StatusOK, result)
}
