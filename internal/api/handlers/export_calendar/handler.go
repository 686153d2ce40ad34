package export_calendar

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	"github.com/wang2185/daylawyer-booking/internal/api/middleware"
	consultationsService "github.com/wang2185/daylawyer-booking/internal/service/consultations"
	"github.com/wang2185/daylawyer-booking/internal/service/consultations/models"
	"github.com/wang2185/daylawyer-booking/pkg/ical"
)

const (
	msgConsultationNotFound = "заявка не найдена"
	msgAccessDenied         = "нет доступа к этой заявке"

	formatGoogle = "google"
)

type Handler struct {
	service  ConsultationsService
	location string // название кабинета для поля LOCATION
	logger   Logger
}

func NewHandler(service ConsultationsService, location string, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/consultations/{consultationId}/calendar.ics
// С параметром format=google вместо файла возвращается редирект
// на страницу создания события в Google Календаре.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	consultationID := mux.Vars(r)["consultationId"]
	userID := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.IsAdminFromContext(r.Context())

	consultation, err := h.service.GetByID(r.Context(), consultationID, userID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, consultationsService.ErrConsultationNotFound):
			h.logger.Warn("GET /consultations/{id}/calendar.ics - Not found: id=%s", consultationID)
			handlers.RespondNotFound(w, msgConsultationNotFound)

		case errors.Is(err, consultationsService.ErrAccessDenied):
			h.logger.Warn("GET /consultations/{id}/calendar.ics - Access denied: id=%s, user_id=%s",
				consultationID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("GET /consultations/{id}/calendar.ics - Failed: id=%s, error=%v", consultationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	event, err := toEvent(consultation, h.location)
	if err != nil {
		h.logger.Error("GET /consultations/{id}/calendar.ics - Bad stored time: id=%s, error=%v",
			consultationID, err)
		handlers.RespondInternalError(w)
		return
	}

	if r.URL.Query().Get("format") == formatGoogle {
		http.Redirect(w, r, ical.GoogleCalendarURL(event), http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=consultation-%s.ics", consultation.ID))
	_, _ = w.Write([]byte(ical.BuildICS(event)))
}

// toEvent собирает календарное событие из заявки
func toEvent(c *models.ConsultationResponse, location string) (ical.Event, error) {
	start, err := time.Parse(time.RFC3339, c.StartTime)
	if err != nil {
		return ical.Event{}, err
	}
	end, err := time.Parse(time.RFC3339, c.EndTime)
	if err != nil {
		return ical.Event{}, err
	}

	return ical.Event{
		UID:         c.ID,
		Title:       c.Title,
		Start:       start,
		End:         end,
		Description: c.Details,
		Location:    location,
	}, nil
}
