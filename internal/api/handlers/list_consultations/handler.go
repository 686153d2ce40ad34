package list_consultations

import (
	"errors"
	"net/http"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	consultationsService "github.com/wang2185/daylawyer-booking/internal/service/consultations"
	"github.com/wang2185/daylawyer-booking/internal/service/consultations/models"
)

const msgInvalidStatus = "некорректный статус заявки"

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

// Handle GET /api/v1/consultations?status= (админ)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}
	if s := r.URL.Query().Get("status"); s != "" {
		req.Status = &s
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, consultationsService.ErrInvalidInput):
			h.logger.Warn("GET /consultations - Invalid status filter")
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /consultations - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /consultations - Returned %d consultations", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
