package export_calendar

import (
	"context"

	"github.com/wang2185/daylawyer-booking/internal/service/consultations/models"
)

type ConsultationsService interface {
	GetByID(ctx context.Context, id string, userID string, isAdmin bool) (*models.ConsultationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
