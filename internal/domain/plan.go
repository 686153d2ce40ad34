package domain

// Plan represents a subscription plan of the law firm
type Plan struct {
	ID            string
	Name          string
	PriceKRW      int64 // стоимость годовой подписки
	IncludedHours int   // кредиты (часы консультаций), выдаваемые при активации
	TopupRateKRW  int64 // стоимость одного дополнительного часа
}

// Статический каталог тарифов. Оплата и checkout - внешние
// коллабораторы, сервис знает только состав тарифов.
var Plans = []Plan{
	{ID: "basic", Name: "베이직", PriceKRW: 110000, IncludedHours: 12, TopupRateKRW: 200000},
	{ID: "pro", Name: "프로", PriceKRW: 990000, IncludedHours: 60, TopupRateKRW: 50000},
	{ID: "elite", Name: "엘리트", PriceKRW: 3300000, IncludedHours: 144, TopupRateKRW: 30000},
}

// PlanByID returns the plan with the given id, or nil if unknown
func PlanByID(id string) *Plan {
	for i := range Plans {
		if Plans[i].ID == id {
			return &Plans[i]
		}
	}
	return nil
}
