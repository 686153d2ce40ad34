package get_available_slots

import (
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/internal/integrations/holidayservice"
)

// isExcludedDay проверяет, что день полностью исключён из календаря:
// суббота, воскресенье или день из набора праздников
func isExcludedDay(date time.Time, holidays holidayservice.HolidaySet) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return holidays.Contains(date.Format(domain.DateFormat))
}

// generateDaySlots генерирует все кандидатные слоты рабочего дня:
// 9 часовых интервалов с началом 09:00 .. 17:00 в таймзоне календаря
func generateDaySlots(date time.Time, loc *time.Location) []domain.Slot {
	slots := make([]domain.Slot, 0, domain.SlotsPerDay)
	for h := domain.WorkDayStartHour; h < domain.WorkDayEndHour; h++ {
		start := time.Date(date.Year(), date.Month(), date.Day(), h, 0, 0, 0, loc)
		slots = append(slots, domain.Slot{
			Start: start,
			End:   start.Add(time.Duration(domain.SlotDurationHours) * time.Hour),
		})
	}
	return slots
}

// AvailableSlots вычисляет доступные слоты дня. Чистая функция:
// для фиксированных входов результат детерминирован.
//
// Алгоритм:
//  1. Выходной или праздник - слотов нет.
//  2. Генерируем 9 кандидатов 09:00-10:00 .. 17:00-18:00.
//  3. Отбрасываем кандидатов, пересекающих занятые интервалы.
//     Пересечение строгое: слот, начинающийся ровно в момент окончания
//     занятого интервала, НЕ считается пересекающимся.
//  4. Отбрасываем слоты, начинающиеся меньше чем через час от now.
func AvailableSlots(
	date time.Time,
	holidays holidayservice.HolidaySet,
	busy []domain.Interval,
	now time.Time,
	loc *time.Location,
) []domain.Slot {
	date = date.In(loc)

	if isExcludedDay(date, holidays) {
		return []domain.Slot{}
	}

	minStart := now.Add(domain.MinLeadTimeHours * time.Hour)

	result := make([]domain.Slot, 0, domain.SlotsPerDay)
	for _, slot := range generateDaySlots(date, loc) {
		if overlapsAny(slot, busy) {
			continue
		}
		if slot.Start.Before(minStart) {
			continue
		}
		result = append(result, slot)
	}

	return result
}

// overlapsAny проверяет пересечение слота хотя бы с одним занятым интервалом
func overlapsAny(slot domain.Slot, busy []domain.Interval) bool {
	candidate := domain.Interval{Start: slot.Start, End: slot.End}
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// ContainsSlot проверяет, что слот с указанным началом присутствует в списке
func ContainsSlot(slots []domain.Slot, start time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}
