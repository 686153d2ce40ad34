package delete_consultation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	consultationsService "github.com/wang2185/daylawyer-booking/internal/service/consultations"
)

const msgConsultationNotFound = "заявка не найдена"

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

// Handle DELETE /api/v1/consultations/{consultationId} (админ)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	consultationID := mux.Vars(r)["consultationId"]

	if err := h.service.Delete(r.Context(), consultationID); err != nil {
		switch {
		case errors.Is(err, consultationsService.ErrConsultationNotFound):
			h.logger.Warn("DELETE /consultations/{id} - Not found: id=%s", consultationID)
			handlers.RespondNotFound(w, msgConsultationNotFound)

		default:
			h.logger.Error("DELETE /consultations/{id} - Failed: id=%s, error=%v", consultationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /consultations/{id} - Deleted: id=%s", consultationID)
	w.WriteHeader(http.StatusNoContent)
}
