package domain

import "time"

// BlockIDPrefix префикс идентификатора блока, производного от заявки
const BlockIDPrefix = "blk_"

// Block represents a calendar exclusion derived from a confirmed
// consultation request. At most one block exists per request: the real
// key is RequestID (unique), the ID keeps the legacy "blk_<requestId>"
// convention for exports and the admin panel.
type Block struct {
	ID        string
	RequestID string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
}

// NewBlockFromRequest derives a block from a confirmed request
func NewBlockFromRequest(r *ConsultationRequest, title string) *Block {
	return &Block{
		ID:        BlockIDPrefix + r.ID,
		RequestID: r.ID,
		Title:     title,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
