package create_consultation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/internal/integrations/notifyservice"
)

// UseCase use case создания заявки на консультацию
type UseCase struct {
	consultationRepo ConsultationRepository
	blockRepo        BlockRepository
	creditRepo       CreditRepository
	holidayProvider  HolidayProvider
	notifyClient     NotifyClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	location         *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	consultationRepo ConsultationRepository,
	blockRepo BlockRepository,
	creditRepo CreditRepository,
	holidayProvider HolidayProvider,
	notifyClient NotifyClient,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		consultationRepo: consultationRepo,
		blockRepo:        blockRepo,
		creditRepo:       creditRepo,
		holidayProvider:  holidayProvider,
		notifyClient:     notifyClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		location:         location,
		logger:           logger,
	}
}

// Execute выполняет use case создания заявки.
// Проверка доступности слота и вставка выполняются в сериализуемой
// транзакции: две почти одновременные заявки на один слот не пройдут обе.
// Заявка либо создаётся целиком, либо не создаётся вовсе; кредиты при
// создании не списываются (списание - только при завершении консультации).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateConsultation: user=%s, plan=%s, type=%s, start=%s",
		req.UserID, req.PlanID, req.Type, req.StartTime.Format(time.RFC3339))

	// 1. Валидация: аутентификация, тариф, корректность полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateConsultation: validation failed: %v", err)
		return nil, err
	}

	// 2. Баланс кредитов должен быть положительным
	balance, err := uc.creditRepo.Balance(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("CreateConsultation: failed to get balance for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get balance: %v", ErrInternal, err)
	}
	if balance <= 0 {
		uc.logger.Warn("CreateConsultation: user=%s has no credits", req.UserID)
		return nil, ErrInsufficientCredits
	}

	// 3. Пустое время начала: слот не выбран или выбор потерян,
	// классифицируется как недоступный слот
	if req.StartTime.IsZero() {
		uc.logger.Warn("CreateConsultation: user=%s submitted empty start time", req.UserID)
		return nil, fmt.Errorf("%w: startTime is empty", ErrSlotUnavailable)
	}

	// 4. Текущее время и праздники (вне транзакции: внешний источник
	// с fallback не должен удлинять транзакцию)
	now := uc.timeProvider.Now().In(uc.location)
	holidays := uc.holidayProvider.GetHolidaysWithFallback(ctx, req.StartTime.In(uc.location).Year())

	start := req.StartTime.In(uc.location)
	end := start.Add(domain.SlotDurationHours * time.Hour)

	var result *domain.ConsultationRequest

	// 5. Повторная проверка слота и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Собираем занятые интервалы дня с блокировкой строк
		busy, err := uc.busyIntervals(txCtx, start)
		if err != nil {
			uc.logger.Error("CreateConsultation: failed to collect busy intervals: %v", err)
			return fmt.Errorf("%w: failed to collect busy intervals: %v", ErrInternal, err)
		}

		// 5.2. Слот должен быть доступен прямо сейчас
		if !slotIsAvailable(start, holidays, busy, now, uc.location) {
			uc.logger.Warn("CreateConsultation: slot %s not available for user=%s",
				start.Format(time.RFC3339), req.UserID)
			return ErrSlotUnavailable
		}

		// 5.3. Создаем заявку со статусом submitted
		consultation := &domain.ConsultationRequest{
			ID:        uuid.NewString(),
			UserID:    req.UserID,
			PlanID:    req.PlanID,
			Type:      req.Type,
			Title:     req.Title,
			Details:   req.Details,
			StartTime: start,
			EndTime:   end,
			Status:    domain.StatusSubmitted,
		}

		created, err := uc.consultationRepo.Create(txCtx, consultation)
		if err != nil {
			uc.logger.Error("CreateConsultation: failed to create consultation: %v", err)
			return fmt.Errorf("%w: failed to create consultation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateConsultation: successfully created consultation id=%s", result.ID)

	// 6. Уведомление best-effort: неудача доставки логируется
	// и не откатывает созданную заявку
	uc.notifyClient.SendBestEffort(ctx, notifyservice.EventConsultSubmitted, map[string]interface{}{
		"email": result.UserID,
		"start": result.StartTime.Format(time.RFC3339),
		"end":   result.EndTime.Format(time.RFC3339),
		"type":  string(result.Type),
	})

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		PlanID:    result.PlanID,
		Type:      string(result.Type),
		Title:     result.Title,
		Details:   result.Details,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}

// busyIntervals собирает занятые интервалы дня выбранного слота
func (uc *UseCase) busyIntervals(ctx context.Context, start time.Time) ([]domain.Interval, error) {
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, uc.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	blocks, err := uc.blockRepo.ListByInterval(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("get blocks: %w", err)
	}

	requests, err := uc.consultationRepo.GetWithFilter(ctx, domain.ConsultationFilter{
		From:      &dayStart,
		To:        &dayEnd,
		Occupying: true,
	})
	if err != nil {
		return nil, fmt.Errorf("get consultations: %w", err)
	}

	busy := make([]domain.Interval, 0, len(blocks)+len(requests))
	for _, b := range blocks {
		busy = append(busy, domain.Interval{Start: b.StartTime, End: b.EndTime})
	}
	for _, r := range requests {
		busy = append(busy, domain.Interval{Start: r.StartTime, End: r.EndTime})
	}

	return busy, nil
}
