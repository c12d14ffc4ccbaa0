package models

// Note — заметка, привязанная к поездке.
type Note struct {
	ItemMeta
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Color   string `json:"color"`
}

// DummyNote используется для приёма данных из JSON-запроса.
type DummyNote struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Color   string `json:"color"`
}

// ToModel конвертирует запрос в доменную модель, подставляя значения по умолчанию.
func (d DummyNote) ToModel() *Note {
	n := &Note{
		Title:   d.Title,
		Content: d.Content,
		Color:   d.Color,
	}
	if n.Color == "" {
		n.Color = "#FFFFFF"
	}
	return n
}

// PatchNote — частичное обновление заметки. Поля trip и user патчем не затрагиваются.
type PatchNote struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
}

// Apply переносит заполненные поля патча в модель.
func (p PatchNote) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
}
