package create_consultation

import (
	"context"
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/internal/integrations/holidayservice"
)

// ConsultationRepository интерфейс репозитория заявок
type ConsultationRepository interface {
	Create(ctx context.Context, req *domain.ConsultationRequest) (*domain.ConsultationRequest, error)
	GetWithFilter(ctx context.Context, filter domain.ConsultationFilter) ([]*domain.ConsultationRequest, error)
}

// BlockRepository интерфейс репозитория календарных блоков
type BlockRepository interface {
	ListByInterval(ctx context.Context, from, to time.Time) ([]*domain.Block, error)
}

// CreditRepository интерфейс репозитория кредитных счетов
type CreditRepository interface {
	Balance(ctx context.Context, userID string) (int, error)
}

// HolidayProvider интерфейс источника праздничных дней
type HolidayProvider interface {
	GetHolidaysWithFallback(ctx context.Context, year int) holidayservice.HolidaySet
}

// NotifyClient интерфейс клиента уведомлений
type NotifyClient interface {
	// SendBestEffort отправляет событие, глотая ошибку доставки
	SendBestEffort(ctx context.Context, event string, payload map[string]interface{})
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
