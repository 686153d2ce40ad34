package get_available_slots

import (
	"github.com/wang2185/daylawyer-booking/internal/domain"
	getAvailableSlots "github.com/wang2185/daylawyer-booking/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// AvailableSlotsResponse HTTP модель ответа со слотами
type AvailableSlotsResponse struct {
	Date  string          `json:"date"` // "2025-06-10"
	Slots []*SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]*SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, &SlotResponse{
			StartTime: s.Start.Format(domain.TimeFormat),
			EndTime:   s.End.Format(domain.TimeFormat),
		})
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
