package activate_plan

import (
	"context"

	"github.com/wang2185/daylawyer-booking/internal/service/credits/models"
)

type CreditsService interface {
	ActivatePlan(ctx context.Context, userID string, req *models.ActivatePlanRequest) (*models.ActivatePlanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
