package credits

import "errors"

var (
	// ErrUnknownPlan возвращается при неизвестном тарифном плане
	ErrUnknownPlan = errors.New("unknown plan")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
