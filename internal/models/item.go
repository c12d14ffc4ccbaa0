package models

import "time"

// ItemMeta — общие поля всех под-ресурсов поездки (расписание, список вещей,
// расходы, заметки). TripID и UserUID выставляются сервисом при создании и
// далее неизменяемы; UserUID дублирует владельца родительской поездки, чтобы
// проверка прав на mutate/delete не требовала повторного чтения поездки.
type ItemMeta struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip"`
	UserUID   string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Meta отдаёт указатель на общие поля; через него дженерик-сервис
// штампует и проверяет владельца, не зная конкретного типа записи.
func (m *ItemMeta) Meta() *ItemMeta { return m }
