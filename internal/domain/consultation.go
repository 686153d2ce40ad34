package domain

import "time"

// ConsultationType represents the way a consultation is held
type ConsultationType string

const (
	TypeInPerson ConsultationType = "in_person"
	TypePhone    ConsultationType = "phone"
	TypeText     ConsultationType = "text"
)

// IsValid returns true if the type is one of the known consultation types
func (t ConsultationType) IsValid() bool {
	switch t {
	case TypeInPerson, TypePhone, TypeText:
		return true
	default:
		return false
	}
}

// ConsultationStatus represents the status of a consultation request
type ConsultationStatus string

const (
	StatusSubmitted             ConsultationStatus = "submitted"
	StatusConfirmed             ConsultationStatus = "confirmed"
	StatusConfirmationCancelled ConsultationStatus = "confirmation_cancelled"
	StatusCompleted             ConsultationStatus = "completed"
	StatusCancelled             ConsultationStatus = "cancelled"
)

// IsValid returns true if the status is one of the known statuses
func (s ConsultationStatus) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusConfirmed, StatusConfirmationCancelled,
		StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ConsultationRequest represents a consultation booking request
type ConsultationRequest struct {
	ID        string
	UserID    string
	PlanID    string
	Type      ConsultationType
	Title     string
	Details   string
	StartTime time.Time // начало слота, всегда StartTime + 1 час = EndTime
	EndTime   time.Time
	Status    ConsultationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the request has not been cancelled
func (r *ConsultationRequest) IsActive() bool {
	return r.Status != StatusCancelled
}

// OccupiesCalendar returns true if the request withholds its interval
// from availability. Text consultations never occupy the calendar.
func (r *ConsultationRequest) OccupiesCalendar() bool {
	return r.IsActive() && r.Type != TypeText
}

// ConsultationFilter фильтр для выборки заявок
type ConsultationFilter struct {
	UserID    *string             // только заявки пользователя
	Status    *ConsultationStatus // фильтр по статусу
	From      *time.Time          // начало периода по start_time (включительно)
	To        *time.Time          // конец периода по start_time (исключительно)
	Occupying bool                // только заявки, занимающие календарь (не отменённые, не текстовые)
}

// CanTransitionTo reports whether the status transition is allowed
// by the request lifecycle:
//
//	submitted              → confirmed | confirmation_cancelled | cancelled
//	confirmed              → confirmation_cancelled | completed
//	confirmation_cancelled → submitted | confirmed
//	completed, cancelled   - терминальные для обычного потока
func (r *ConsultationRequest) CanTransitionTo(next ConsultationStatus) bool {
	switch r.Status {
	case StatusSubmitted:
		return next == StatusConfirmed || next == StatusConfirmationCancelled || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusConfirmationCancelled || next == StatusCompleted
	case StatusConfirmationCancelled:
		return next == StatusSubmitted || next == StatusConfirmed
	default:
		return false
	}
}
