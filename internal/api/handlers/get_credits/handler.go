package get_credits

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	"github.com/wang2185/daylawyer-booking/internal/api/middleware"
)

const msgAccessDenied = "нет доступа к балансу другого пользователя"

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

// Handle GET /api/v1/users/{userId}/credits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	targetUserID := mux.Vars(r)["userId"]
	requesterID := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.IsAdminFromContext(r.Context())

	if !isAdmin && targetUserID != requesterID {
		h.logger.Warn("GET /users/{userId}/credits - Access denied: user_id=%s, target=%s",
			requesterID, targetUserID)
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		return
	}

	result, err := h.service.Balance(r.Context(), targetUserID)
	if err != nil {
		h.logger.Error("GET /users/{userId}/credits - Failed: user_id=%s, error=%v", targetUserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
