package adjust_credits

import (
	"context"

	"github.com/wang2185/daylawyer-booking/internal/service/credits/models"
)

type CreditsService interface {
	Adjust(ctx context.Context, userID string, req *models.AdjustRequest) (*models.BalanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
