package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	consultationRepo ConsultationRepository
	blockRepo        BlockRepository
	holidayProvider  HolidayProvider
	timeProvider     TimeProvider
	location         *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	consultationRepo ConsultationRepository,
	blockRepo BlockRepository,
	holidayProvider HolidayProvider,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		consultationRepo: consultationRepo,
		blockRepo:        blockRepo,
		holidayProvider:  holidayProvider,
		timeProvider:     &RealTimeProvider{},
		location:         location,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%s, date=%s",
		req.UserID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Текущее время в таймзоне календаря
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Собираем занятые интервалы дня
	busy, err := uc.BusyIntervals(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to collect busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to collect busy intervals: %v", ErrInternal, err)
	}

	// 4. Праздники года (с fallback при недоступности источника)
	holidays := uc.holidayProvider.GetHolidaysWithFallback(ctx, req.Date.In(uc.location).Year())

	// 5. Чистый расчёт доступности
	slots := AvailableSlots(req.Date, holidays, busy, now, uc.location)

	uc.logger.Info("GetAvailableSlots: %d slots available on %s (busy=%d)",
		len(slots), req.Date.Format(domain.DateFormat), len(busy))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

// BusyIntervals собирает занятые интервалы дня: календарные блоки плюс
// заявки, занимающие календарь (не отменённые, не текстовые).
// Используется и при отдаче календаря, и при повторной проверке слота
// в момент создания заявки (внутри транзакции).
func (uc *UseCase) BusyIntervals(ctx context.Context, date time.Time) ([]domain.Interval, error) {
	d := date.In(uc.location)
	dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, uc.location)
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
