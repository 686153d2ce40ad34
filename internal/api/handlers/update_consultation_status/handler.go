package update_consultation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	consultationsService "github.com/wang2185/daylawyer-booking/internal/service/consultations"
	"github.com/wang2185/daylawyer-booking/internal/service/consultations/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgConsultationNotFound = "заявка не найдена"
	msgInvalidStatus        = "некорректный статус заявки"
	msgInvalidTransition    = "недопустимый переход статуса"
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

// Handle PATCH /api/v1/consultations/{consultationId}/status (админ)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	consultationID := mux.Vars(r)["consultationId"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /consultations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), consultationID, &req); err != nil {
		switch {
		case errors.Is(err, consultationsService.ErrConsultationNotFound):
			h.logger.Warn("PATCH /consultations/{id}/status - Not found: id=%s", consultationID)
			handlers.RespondNotFound(w, msgConsultationNotFound)

		case errors.Is(err, consultationsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /consultations/{id}/status - Invalid status: id=%s, status=%s",
				consultationID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, consultationsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /consultations/{id}/status - Invalid transition: id=%s, status=%s",
				consultationID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /consultations/{id}/status - Failed: id=%s, error=%v", consultationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /consultations/{id}/status - Updated: id=%s, status=%s", consultationID, req.Status)
	w.WriteHeader(http.StatusNoContent)
}
