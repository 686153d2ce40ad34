package holidayservice

import "errors"

var (
	// ErrProviderUnavailable возвращается, когда источник праздничных
	// дней недоступен или вернул некорректный ответ
	ErrProviderUnavailable = errors.New("holidayservice client: provider unavailable")

	// ErrInvalidResponse возвращается при некорректном теле ответа
	ErrInvalidResponse = errors.New("holidayservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidayservice client: internal error")
)
