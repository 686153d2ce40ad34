package create_consultation

import (
	"errors"
	"net/http"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	"github.com/wang2185/daylawyer-booking/internal/api/middleware"
	createConsultation "github.com/wang2185/daylawyer-booking/internal/usecase/create_consultation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStartTime    = "некорректный формат времени начала, ожидается RFC3339"
	msgUnauthenticated     = "требуется вход в систему"
	msgNoActivePlan        = "требуется активный тарифный план"
	msgInsufficientCredits = "недостаточно кредитных часов"
	msgSlotNotAvailable    = "выбранный временной слот недоступен"
	msgInvalidConsultation = "некорректные данные заявки"
)

type Handler struct {
	useCase CreateConsultationUseCase
	logger  Logger
}

func NewHandler(useCase CreateConsultationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/consultations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateConsultationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /consultations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /consultations - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createConsultation.ErrUnauthenticated):
			h.logger.Warn("POST /consultations - Unauthenticated request")
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthenticated)

		case errors.Is(err, createConsultation.ErrNoActivePlan):
			h.logger.Warn("POST /consultations - No active plan: user_id=%s", userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgNoActivePlan)

		case errors.Is(err, createConsultation.ErrInsufficientCredits):
			h.logger.Warn("POST /consultations - Insufficient credits: user_id=%s", userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientCredits)

		case errors.Is(err, createConsultation.ErrSlotUnavailable):
			h.logger.Warn("POST /consultations - Slot not available: user_id=%s, start=%s", userID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createConsultation.ErrInvalidInput):
			h.logger.Warn("POST /consultations - Invalid input: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidConsultation)

		default:
			h.logger.Error("POST /consultations - Failed to create consultation: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /consultations - Consultation created: id=%s, user_id=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
