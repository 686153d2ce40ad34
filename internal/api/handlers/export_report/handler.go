package export_report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wang2185/daylawyer-booking/internal/api/handlers"
	reportsService "github.com/wang2185/daylawyer-booking/internal/service/reports"
	"github.com/wang2185/daylawyer-booking/internal/service/reports/models"
)

const (
	msgInvalidPeriod = "некорректный период, ожидается monthly или quarterly"

	formatCSV = "csv"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/completed?period=monthly|quarterly&format=csv (админ)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = models.PeriodMonthly
	}

	result, err := h.service.Completed(r.Context(), period)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/completed - Invalid period: %s", period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/completed - Failed: period=%s, error=%v", period, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/completed - Report built: period=%s, rows=%d", period, len(result.Rows))

	if r.URL.Query().Get("format") == formatCSV {
		h.respondCSV(w, result)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// respondCSV выгружает отчёт в формате CSV
func (h *Handler) respondCSV(w http.ResponseWriter, report *models.ReportResponse) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=completed-%s.csv", report.Period))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"period", "completed"})
	for _, row := range report.Rows {
		_ = cw.Write([]string{row.Period, strconv.Itoa(row.Completed)})
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		h.logger.Error("GET /reports/completed - Failed to write CSV: %v", err)
	}
}
