package reports

import (
	"context"

	"github.com/wang2185/daylawyer-booking/internal/domain"
)

// ConsultationRepository интерфейс репозитория заявок
type ConsultationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ConsultationFilter) ([]*domain.ConsultationRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
