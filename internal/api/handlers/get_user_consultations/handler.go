package get_user_consultations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	"github.com/wang2185/daylawyer-booking/internal/api/middleware"
	consultationsService "github.com/wang2185/daylawyer-booking/internal/service/consultations"
)

const (
	msgAccessDenied  = "нет доступа к заявкам другого пользователя"
	msgInvalidStatus = "некорректный статус заявки"
)

type Handler struct {
	service ConsultationsService
	logger  Logger
}

func NewHandler(service ConsultationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/consultations?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	targetUserID := mux.Vars(r)["userId"]
	requesterID := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.IsAdminFromContext(r.Context())

	// Пользователь видит только собственную историю
	if !isAdmin && targetUserID != requesterID {
		h.logger.Warn("GET /users/{userId}/consultations - Access denied: user_id=%s, target=%s",
			requesterID, targetUserID)
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.GetByUser(r.Context(), targetUserID, status)
	if err != nil {
		switch {
		case errors.Is(err, consultationsService.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/consultations - Invalid status filter: user_id=%s", targetUserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{userId}/consultations - Failed: user_id=%s, error=%v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/consultations - Returned %d consultations for user_id=%s",
		result.Total, targetUserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
