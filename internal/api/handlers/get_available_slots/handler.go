package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	"github.com/wang2185/daylawyer-booking/internal/api/middleware"
	"github.com/wang2185/daylawyer-booking/internal/domain"
	getAvailableSlots "github.com/wang2185/daylawyer-booking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "отсутствует параметр date"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/consultations/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /consultations/available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /consultations/available-slots - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UserID: middleware.UserIDFromContext(r.Context()),
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /consultations/available-slots - Invalid input: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /consultations/available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /consultations/available-slots - Returned %d slots for date=%s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
