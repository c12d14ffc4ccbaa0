package models

import "time"

// Допустимые значения категории и приоритета пункта расписания.
var (
	ScheduleCategories = []string{"Transportation", "Accommodation", "Activity", "Food", "Other"}
	SchedulePriorities = []string{"Low", "Medium", "High"}
)

// ScheduleItem — пункт расписания поездки.
type ScheduleItem struct {
	ItemMeta
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// DummySchedule используется для приёма данных из JSON-запроса.
// Времена приходят в формате RFC3339.
type DummySchedule struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Category    string     `json:"category" validate:"omitempty,oneof=Transportation Accommodation Activity Food Other"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	StartTime   time.Time  `json:"start_time" validate:"required"`
	EndTime     *time.Time `json:"end_time"`
}

// ToModel конвертирует запрос в доменную модель, подставляя значения по умолчанию.
func (d DummySchedule) ToModel() *ScheduleItem {
	item := &ScheduleItem{
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		Category:    d.Category,
		Priority:    d.Priority,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
	}
	if item.Category == "" {
		item.Category = "Activity"
	}
	if item.Priority == "" {
		item.Priority = "Medium"
	}
	return item
}

// PatchSchedule — частичное обновление пункта расписания.
// Поля trip и user патчем не затрагиваются.
type PatchSchedule struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Category    *string    `json:"category" validate:"omitempty,oneof=Transportation Accommodation Activity Food Other"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

// Apply переносит заполненные поля патча в модель.
func (p PatchSchedule) Apply(item *ScheduleItem) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Priority != nil {
		item.Priority = *p.Priority
	}
	if p.StartTime != nil {
		item.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		item.EndTime = p.EndTime
	}
}
