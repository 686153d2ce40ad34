package models

// Request модели

// AdjustRequest запрос на корректировку баланса (админ)
type AdjustRequest struct {
	Delta int `json:"delta"`
}

// ActivatePlanRequest запрос на активацию тарифного плана
type ActivatePlanRequest struct {
	PlanID string `json:"planId"`
}

// TopupRequest запрос на докупку часов
type TopupRequest struct {
	PlanID string `json:"planId"`
	Hours  int    `json:"hours"`
}

// Response модели

// BalanceResponse баланс кредитных часов пользователя
type BalanceResponse struct {
	UserID string `json:"userId"`
	Hours  int    `json:"hours"`
}

// ActivatePlanResponse результат активации плана
type ActivatePlanResponse struct {
	UserID   string `json:"userId"`
	PlanID   string `json:"planId"`
	PlanName string `json:"planName"`
	Hours    int    `json:"hours"`
	PriceKRW int64  `json:"priceKrw"`
}

// TopupResponse результат докупки часов
type TopupResponse struct {
	UserID    string `json:"userId"`
	PlanID    string `json:"planId"`
	Hours     int    `json:"hours"`     // докуплено часов
	AmountKRW int64  `json:"amountKrw"` // стоимость докупки
	Balance   int    `json:"balance"`   // баланс после докупки
}
