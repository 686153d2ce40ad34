// Package ical генерирует iCalendar-файлы и ссылки Google Calendar
// для подтверждённых консультаций. Чистые функции форматирования,
// без состояния и side effects.
package ical

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Event данные события календаря
type Event struct {
	UID         string
	Title       string
	Start       time.Time
	End         time.Time
	Description string
	Location    string
}

// utcStamp формат DTSTART/DTEND в basic-формате UTC (20250610T050000Z)
func utcStamp(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeText экранирует спецсимволы по RFC 5545
func escapeText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}

// BuildICS возвращает текст VCALENDAR с одним событием
func BuildICS(e Event) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//DayLawyer//KR//\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s@daylawyer\r\n", e.UID)
	fmt.Fprintf(&b, "DTSTAMP:%s\r\n", utcStamp(e.Start))
	fmt.Fprintf(&b, "DTSTART:%s\r\n", utcStamp(e.Start))
	fmt.Fprintf(&b, "DTEND:%s\r\n", utcStamp(e.End))
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeText(e.Title))
	fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escapeText(e.Description))
	fmt.Fprintf(&b, "LOCATION:%s\r\n", escapeText(e.Location))
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

// GoogleCalendarURL возвращает ссылку "добавить в Google Calendar"
func GoogleCalendarURL(e Event) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("dates", utcStamp(e.Start)+"/"+utcStamp(e.End))
	q.Set("details", e.Description)
	q.Set("location", e.Location)
	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
