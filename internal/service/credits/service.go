package credits

import (
	"context"
	"fmt"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/internal/service/credits/models"
)

// Service сервис кредитных счетов.
// Баланс хранится в целых часах и никогда не опускается ниже нуля.
type Service struct {
	creditRepo CreditRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса кредитов
func NewService(creditRepo CreditRepository, logger Logger) *Service {
	return &Service{
		creditRepo: creditRepo,
		logger:     logger,
	}
}

// Balance возвращает текущий баланс часов пользователя.
// Отсутствие счёта эквивалентно нулевому балансу.
func (s *Service) Balance(ctx context.Context, userID string) (*models.BalanceResponse, error) {
	hours, err := s.creditRepo.Balance(ctx, userID)
	if err != nil {
		s.logger.Error("Balance: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Balance - repository error: %v", ErrInternal, err)
	}

	return &models.BalanceResponse{UserID: userID, Hours: hours}, nil
}

// Adjust корректирует баланс пользователя на delta часов (админ).
// Итоговый баланс не опускается ниже нуля.
func (s *Service) Adjust(ctx context.Context, userID string, req *models.AdjustRequest) (*models.BalanceResponse, error) {
	s.logger.Info("Adjust: adjusting balance for user=%s by %d hours", userID, req.Delta)

	if req.Delta == 0 {
		s.logger.Warn("Adjust: zero delta for user=%s", userID)
		return nil, fmt.Errorf("%w: delta must be non-zero", ErrInvalidInput)
	}

	if err := s.creditRepo.Adjust(ctx, userID, req.Delta); err != nil {
		s.logger.Error("Adjust: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Adjust - repository error: %v", ErrInternal, err)
	}

	return s.Balance(ctx, userID)
}

// ActivatePlan активирует тарифный план: баланс пользователя
// УСТАНАВЛИВАЕТСЯ равным включённым часам плана (не прибавляется).
func (s *Service) ActivatePlan(ctx context.Context, userID string, req *models.ActivatePlanRequest) (*models.ActivatePlanResponse, error) {
	s.logger.Info("ActivatePlan: activating plan=%s for user=%s", req.PlanID, userID)

	plan := domain.PlanByID(req.PlanID)
	if plan == nil {
		s.logger.Warn("ActivatePlan: unknown plan=%s for user=%s", req.PlanID, userID)
		return nil, ErrUnknownPlan
	}

	if err := s.creditRepo.Set(ctx, userID, plan.IncludedHours); err != nil {
		s.logger.Error("ActivatePlan: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ActivatePlan - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ActivatePlan: user=%s now has %d hours on plan=%s", userID, plan.IncludedHours, plan.ID)

	return &models.ActivatePlanResponse{
		UserID:   userID,
		PlanID:   plan.ID,
		PlanName: plan.Name,
		Hours:    plan.IncludedHours,
		PriceKRW: plan.PriceKRW,
	}, nil
}

// Topup докупает часы по топап-ставке текущего плана пользователя.
// Возвращает сумму к оплате и баланс после начисления.
func (s *Service) Topup(ctx context.Context, userID string, req *models.TopupRequest) (*models.TopupResponse, error) {
	s.logger.Info("Topup: user=%s buying %d hours on plan=%s", userID, req.Hours, req.PlanID)

	if req.Hours <= 0 {
		s.logger.Warn("Topup: non-positive hours=%d for user=%s", req.Hours, userID)
		return nil, fmt.Errorf("%w: hours must be positive", ErrInvalidInput)
	}

	plan := domain.PlanByID(req.PlanID)
	if plan == nil {
		s.logger.Warn("Topup: unknown plan=%s for user=%s", req.PlanID, userID)
		return nil, ErrUnknownPlan
	}

	if err := s.creditRepo.Adjust(ctx, userID, req.Hours); err != nil {
		s.logger.Error("Topup: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Topup - repository error: %v", ErrInternal, err)
	}

	balance, err := s.creditRepo.Balance(ctx, userID)
	if err != nil {
		s.logger.Error("Topup: failed to read balance for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Topup - read balance: %v", ErrInternal, err)
	}

	return &models.TopupResponse{
		UserID:    userID,
		PlanID:    plan.ID,
		Hours:     req.Hours,
		AmountKRW: plan.TopupRateKRW * int64(req.Hours),
		Balance:   balance,
	}, nil
}
