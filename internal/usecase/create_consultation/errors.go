package create_consultation

import "errors"

var (
	// ErrUnauthenticated возвращается, когда пользователь не аутентифицирован
	ErrUnauthenticated = errors.New("create_consultation: user is not authenticated")

	// ErrNoActivePlan возвращается, когда у пользователя нет активного тарифа
	ErrNoActivePlan = errors.New("create_consultation: user has no active plan")

	// ErrInsufficientCredits возвращается при нулевом балансе кредитов
	ErrInsufficientCredits = errors.New("create_consultation: insufficient credits")

	// ErrSlotUnavailable возвращается, когда выбранный слот недоступен
	// на момент отправки заявки (повторная проверка, защита от устаревшего выбора)
	ErrSlotUnavailable = errors.New("create_consultation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_consultation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_consultation: internal error")
)
