package get_blocks

import (
	"net/http"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
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

// Handle GET /api/v1/blocks (админ)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlocks(r.Context())
	if err != nil {
		h.logger.Error("GET /blocks - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocks - Returned %d blocks", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
