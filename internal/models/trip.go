package models

import "time"

// Trip — поездка пользователя, корень иерархии владения.
// UserUID выставляется один раз при создании и далее не меняется.
type Trip struct {
	ID          string    `json:"id"`
	UserUID     string    `json:"user"`
	TripName    string    `json:"trip_name"`
	Destination string    `json:"destination"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      *float64  `json:"budget,omitempty"`
	Activities  []string  `json:"activities"`
	CoverImage  string    `json:"cover_image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DummyTrip используется для приёма данных из JSON-запроса на создание поездки.
// Даты приходят строками в формате 2006-01-02 и парсятся в сервисе.
// Корректность диапазона дат (end >= start) нигде не проверяется.
type DummyTrip struct {
	TripName    string   `json:"trip_name" validate:"required"`
	Destination string   `json:"destination" validate:"required"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date" validate:"required"`
	EndDate     string   `json:"end_date" validate:"required"`
	Budget      *float64 `json:"budget" validate:"omitempty,gt=0"`
	Activities  []string `json:"activities"`
	CoverImage  string   `json:"cover_image"`
}
