package topup_credits

import (
	"context"

	"github.com/wang2185/daylawyer-booking/internal/service/credits/models"
)

type CreditsService interface {
	Topup(ctx context.Context, userID string, req *models.TopupRequest) (*models.TopupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
