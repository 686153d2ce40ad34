package get_available_slots

import (
	"context"
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/internal/integrations/holidayservice"
)

// ConsultationRepository интерфейс репозитория заявок
type ConsultationRepository interface {
	// GetWithFilter получает заявки по фильтру (период, занятость календаря)
	GetWithFilter(ctx context.Context, filter domain.ConsultationFilter) ([]*domain.ConsultationRequest, error)
}

// BlockRepository интерфейс репозитория календарных блоков
type BlockRepository interface {
	// ListByInterval получает блоки, пересекающие интервал [from, to)
	ListByInterval(ctx context.Context, from, to time.Time) ([]*domain.Block, error)
}

// HolidayProvider интерфейс источника праздничных дней
type HolidayProvider interface {
	// GetHolidaysWithFallback возвращает праздники года; при недоступности
	// источника - кеш или минимальный безопасный набор, никогда не падает
	GetHolidaysWithFallback(ctx context.Context, year int) holidayservice.HolidaySet
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
