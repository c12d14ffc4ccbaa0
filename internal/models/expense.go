package models

import "time"

// Expense — расход, привязанный к поездке.
type Expense struct {
	ItemMeta
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Currency    string    `json:"currency"`
	SpentAt     time.Time `json:"date"`
}

// DummyExpense используется для приёма данных из JSON-запроса.
type DummyExpense struct {
	Description string     `json:"description" validate:"required"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	Category    string     `json:"category"`
	Currency    string     `json:"currency"`
	SpentAt     *time.Time `json:"date"`
}

// ToModel конвертирует запрос в доменную модель, подставляя значения по умолчанию.
func (d DummyExpense) ToModel() *Expense {
	e := &Expense{
		Description: d.Description,
		Amount:      d.Amount,
		Category:    d.Category,
		Currency:    d.Currency,
	}
	if e.Category == "" {
		e.Category = "Miscellaneous"
	}
	if e.Currency == "" {
		e.Currency = "INR"
	}
	if d.SpentAt != nil {
		e.SpentAt = *d.SpentAt
	} else {
		e.SpentAt = time.Now().UTC()
	}
	return e
}

// PatchExpense — частичное обновление расхода. Поля trip и user патчем не затрагиваются.
type PatchExpense struct {
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount" validate:"omitempty,gt=0"`
	Category    *string    `json:"category"`
	Currency    *string    `json:"currency"`
	SpentAt     *time.Time `json:"date"`
}

// Apply переносит заполненные поля патча в модель.
func (p PatchExpense) Apply(e *Expense) {
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Currency != nil {
		e.Currency = *p.Currency
	}
	if p.SpentAt != nil {
		e.SpentAt = *p.SpentAt
	}
}
