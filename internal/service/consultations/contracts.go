package consultations

import (
	"context"

	"github.com/wang2185/daylawyer-booking/internal/domain"
)

// ConsultationRepository интерфейс репозитория заявок
type ConsultationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ConsultationRequest, error)
	GetByUser(ctx context.Context, userID string, status *domain.ConsultationStatus) ([]*domain.ConsultationRequest, error)
	GetWithFilter(ctx context.Context, filter domain.ConsultationFilter) ([]*domain.ConsultationRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.ConsultationStatus) error
	Delete(ctx context.Context, id string) error
}

// BlockRepository интерфейс репозитория календарных блоков
type BlockRepository interface {
	Upsert(ctx context.Context, b *domain.Block) (*domain.Block, error)
	DeleteByRequestID(ctx context.Context, requestID string) error
	List(ctx context.Context) ([]*domain.Block, error)
}

// CreditRepository интерфейс репозитория кредитных счетов
type CreditRepository interface {
	Adjust(ctx context.Context, userID string, delta int) error
}

// NotifyClient интерфейс клиента уведомлений
type NotifyClient interface {
	SendBestEffort(ctx context.Context, event string, payload map[string]interface{})
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
