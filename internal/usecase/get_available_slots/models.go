package get_available_slots

import (
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID string    // ID пользователя (для логирования, не влияет на результат)
	Date   time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time     // Дата, на которую запрашивались слоты
	Slots []domain.Slot // Доступные слоты в порядке возрастания начала
}
