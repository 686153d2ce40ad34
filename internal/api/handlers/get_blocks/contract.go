package get_blocks

import (
	"context"

	"github.com/wang2185/daylawyer-booking/internal/service/consultations/models"
)

type ConsultationsService interface {
	ListBlocks(ctx context.Context) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
