package export_report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reportsService "github.com/wang2185/daylawyer-booking/internal/service/reports"
	"github.com/wang2185/daylawyer-booking/internal/service/reports/models"
)

type fakeReportsService struct {
	resp *models.ReportResponse
	err  error
}

func (f *fakeReportsService) Completed(_ context.Context, period string) (*models.ReportResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleReport() *models.ReportResponse {
	return &models.ReportResponse{
		Period: models.PeriodMonthly,
		Rows: []*models.ReportRow{
			{Period: "2025-05", Completed: 1},
			{Period: "2025-06", Completed: 3},
		},
	}
}

func TestHandle_JSON(t *testing.T) {
	h := NewHandler(&fakeReportsService{resp: sampleReport()}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/reports/completed?period=monthly", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ReportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "monthly", got.Period)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, 3, got.Rows[1].Completed)
}

func TestHandle_CSV(t *testing.T) {
	h := NewHandler(&fakeReportsService{resp: sampleReport()}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/reports/completed?period=monthly&format=csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "completed-monthly.csv")

	assert.Equal(t, "period,completed\n2025-05,1\n2025-06,3\n", rec.Body.String())
}

func TestHandle_InvalidPeriod(t *testing.T) {
	h := NewHandler(&fakeReportsService{err: reportsService.ErrInvalidPeriod}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/reports/completed?period=weekly", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_DefaultPeriodIsMonthly(t *testing.T) {
	svc := &fakeReportsService{resp: sampleReport()}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/reports/completed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
