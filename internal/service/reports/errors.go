package reports

import "errors"

var (
	// ErrInvalidPeriod возвращается при неизвестном типе периода
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
