package create_consultation

import (
	"fmt"
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/internal/integrations/holidayservice"
)

// validateRequest валидирует входные данные запроса.
// Порядок проверок фиксирован: первая неудача выигрывает.
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return ErrUnauthenticated
	}

	if req.PlanID == "" || domain.PlanByID(req.PlanID) == nil {
		return ErrNoActivePlan
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown consultation type %q", ErrInvalidInput, req.Type)
	}

	return nil
}

// slotIsAvailable повторяет расчёт доступности для выбранного слота
// на момент отправки заявки. Выбор в UI мог устареть: слот могли занять
// между выбором и отправкой.
func slotIsAvailable(
	start time.Time,
	holidays holidayservice.HolidaySet,
	busy []domain.Interval,
	now time.Time,
	loc *time.Location,
) bool {
	start = start.In(loc)

	// Слот должен начинаться ровно на границе рабочего часа
	if start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return false
	}
	if start.Hour() < domain.WorkDayStartHour || start.Hour() >= domain.WorkDayEndHour {
		return false
	}

	// Выходной или праздник
	switch start.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	if holidays.Contains(start.Format(domain.DateFormat)) {
		return false
	}

	// Минимальный lead time: не меньше часа от "сейчас"
	if start.Before(now.Add(domain.MinLeadTimeHours * time.Hour)) {
		return false
	}

	// Пересечение с занятыми интервалами (строгое, границы не считаются)
	candidate := domain.Interval{
		Start: start,
		End:   start.Add(domain.SlotDurationHours * time.Hour),
	}
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return false
		}
	}

	return true
}
