package models

import (
	"errors"
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid consultation status")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса заявки
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListRequest запрос на получение заявок (админ)
type ListRequest struct {
	Status *string `json:"status,omitempty"` // фильтр по статусу (опционально)
}

// Response модели

// ConsultationResponse представление заявки
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
	UpdatedAt string `json:"updatedAt"`
}

// ConsultationListResponse список заявок
type ConsultationListResponse struct {
	Consultations []*ConsultationResponse `json:"consultations"`
	Total         int                     `json:"total"`
}

// BlockResponse представление календарного блока
type BlockResponse struct {
	ID        string `json:"id"`
	RequestID string `json:"requestId"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BlockListResponse список блоков
type BlockListResponse struct {
	Blocks []*BlockResponse `json:"blocks"`
	Total  int              `json:"total"`
}

// FromDomainConsultation конвертирует domain заявку в response
func FromDomainConsultation(r *domain.ConsultationRequest) *ConsultationResponse {
	return &ConsultationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		PlanID:    r.PlanID,
		Type:      string(r.Type),
		Title:     r.Title,
		Details:   r.Details,
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainConsultationList конвертирует список domain заявок
func FromDomainConsultationList(list []*domain.ConsultationRequest) *ConsultationListResponse {
	out := make([]*ConsultationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainConsultation(r))
	}
	return &ConsultationListResponse{Consultations: out, Total: len(out)}
}

// FromDomainBlock конвертирует domain блок в response
func FromDomainBlock(b *domain.Block) *BlockResponse {
	return &BlockResponse{
		ID:        b.ID,
		RequestID: b.RequestID,
		Title:     b.Title,
		StartTime: b.StartTime.Format(time.RFC3339),
		EndTime:   b.EndTime.Format(time.RFC3339),
	}
}

// FromDomainBlockList конвертирует список domain блоков
func FromDomainBlockList(list []*domain.Block) *BlockListResponse {
	out := make([]*BlockResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromDomainBlock(b))
	}
	return &BlockListResponse{Blocks: out, Total: len(out)}
}

// ToDomainConsultationStatus конвертирует строку в domain статус
func ToDomainConsultationStatus(s string) (domain.ConsultationStatus, error) {
	status := domain.ConsultationStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
