package models

// Период отчёта
const (
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
)

// ReportRow строка отчёта: период и число завершённых консультаций
type ReportRow struct {
	Period    string `json:"period"` // "2025-06" или "2025-Q2"
	Completed int    `json:"completed"`
}

// ReportResponse отчёт по завершённым консультациям
type ReportResponse struct {
	Period string       `json:"period"` // monthly / quarterly
	Rows   []*ReportRow `json:"rows"`
}
