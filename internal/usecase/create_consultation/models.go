package create_consultation

import (
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
)

// Request модель запроса на создание заявки на консультацию
type Request struct {
	UserID    string                  // ID пользователя (пусто = не аутентифицирован)
	PlanID    string                  // ID тарифа пользователя
	Type      domain.ConsultationType // Тип консультации
	Title     string                  // Тема
	Details   string                  // Подробности
	StartTime time.Time               // Начало выбранного слота
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID        string    // ID созданной заявки
	UserID    string    // ID пользователя
	PlanID    string    // ID тарифа
	Type      string    // Тип консультации
	Title     string    // Тема
	Details   string    // Подробности
	StartTime time.Time // Начало слота
	EndTime   time.Time // Конец слота (ровно через час)
	Status    string    // Статус заявки (submitted)
	CreatedAt time.Time // Время создания
}
