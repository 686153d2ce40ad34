package list_consultations

import (
	"context"

	"github.com/wang2185/daylawyer-booking/internal/service/consultations/models"
)

type ConsultationsService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.ConsultationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
