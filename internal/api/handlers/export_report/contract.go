package export_report

import (
	"context"

	"github.com/wang2185/daylawyer-booking/internal/service/reports/models"
)

type ReportsService interface {
	Completed(ctx context.Context, period string) (*models.ReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
