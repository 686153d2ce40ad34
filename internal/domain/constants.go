package domain

// Рабочий день юриста: 9 часовых слотов, 09:00-10:00 ... 17:00-18:00
const (
	WorkDayStartHour  = 9
	WorkDayEndHour    = 18
	SlotDurationHours = 1

	// MinLeadTimeHours минимальный интервал между "сейчас" и началом слота
	MinLeadTimeHours = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// DefaultTimezone таймзона календаря консультаций
const DefaultTimezone = "Asia/Seoul"

// DefaultLocation локация по умолчанию для экспорта в календарь
const DefaultLocation = "Law Firm Wins"

// SlotsPerDay количество слотов в рабочем дне
const SlotsPerDay = WorkDayEndHour - WorkDayStartHour
