package credits

import "context"

// CreditRepository интерфейс репозитория кредитных счетов
type CreditRepository interface {
	Balance(ctx context.Context, userID string) (int, error)
	Set(ctx context.Context, userID string, hours int) error
	Adjust(ctx context.Context, userID string, delta int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
