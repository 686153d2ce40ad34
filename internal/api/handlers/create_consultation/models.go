package create_consultation

import (
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	createConsultation "github.com/wang2185/daylawyer-booking/internal/usecase/create_consultation"
)

// CreateConsultationRequest HTTP request model
type CreateConsultationRequest struct {
	PlanID    string `json:"planId"`
	Type      string `json:"type"` // in_person / phone / text
	Title     string `json:"title"`
	Details   string `json:"details"`
	StartTime string `json:"startTime"` // RFC3339, начало выбранного слота
}

// ConsultationResponse HTTP response model
type ConsultationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	PlanID    string `json:"planId"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Details   string `json:"details"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateConsultationRequest) ToUseCaseRequest(userID string) (*createConsultation.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createConsultation.Request{
		UserID:    userID,
		PlanID:    r.PlanID,
		Type:      domain.ConsultationType(r.Type),
		Title:     r.Title,
		Details:   r.Details,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createConsultation.Response) *ConsultationResponse {
	return &ConsultationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		PlanID:    resp.PlanID,
		Type:      resp.Type,
		Title:     resp.Title,
		Details:   resp.Details,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
