package get_consultation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	"github.com/wang2185/daylawyer-booking/internal/api/middleware"
	consultationsService "github.com/wang2185/daylawyer-booking/internal/service/consultations"
)

const (
	msgConsultationNotFound = "заявка не найдена"
	msgAccessDenied         = "нет доступа к этой заявке"
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

// Handle GET /api/v1/consultations/{consultationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	consultationID := mux.Vars(r)["consultationId"]
	userID := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.IsAdminFromContext(r.Context())

	result, err := h.service.GetByID(r.Context(), consultationID, userID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, consultationsService.ErrConsultationNotFound):
			h.logger.Warn("GET /consultations/{id} - Not found: id=%s", consultationID)
			handlers.RespondNotFound(w, msgConsultationNotFound)

		case errors.Is(err, consultationsService.ErrAccessDenied):
			h.logger.Warn("GET /consultations/{id} - Access denied: id=%s, user_id=%s", consultationID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("GET /consultations/{id} - Failed: id=%s, error=%v", consultationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
