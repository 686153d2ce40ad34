package holidayservice

// HolidaySet набор нерабочих календарных дат одного года.
// Ключ - дата в формате YYYY-MM-DD, без компонента времени.
type HolidaySet map[string]struct{}

// NewHolidaySet собирает набор из списка дат
func NewHolidaySet(dates []string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether the given YYYY-MM-DD date is a holiday
func (s HolidaySet) Contains(date string) bool {
	_, ok := s[date]
	return ok
}
