package models

// PackingItem — вещь из списка вещей поездки.
type PackingItem struct {
	ItemMeta
	ItemName string `json:"item_name"`
	Category string `json:"category"`
	IsPacked bool   `json:"is_packed"`
}

// DummyPacking используется для приёма данных из JSON-запроса.
type DummyPacking struct {
	ItemName string `json:"item_name" validate:"required"`
	Category string `json:"category"`
	IsPacked bool   `json:"is_packed"`
}

// ToModel конвертирует запрос в доменную модель, подставляя значения по умолчанию.
func (d DummyPacking) ToModel() *PackingItem {
	item := &PackingItem{
		ItemName: d.ItemName,
		Category: d.Category,
		IsPacked: d.IsPacked,
	}
	if item.Category == "" {
		item.Category = "Miscellaneous"
	}
	return item
}

// PatchPacking — частичное обновление вещи. Поля trip и user патчем не затрагиваются.
type PatchPacking struct {
	ItemName *string `json:"item_name"`
	Category *string `json:"category"`
	IsPacked *bool   `json:"is_packed"`
}

// Apply переносит заполненные поля патча в модель.
func (p PatchPacking) Apply(item *PackingItem) {
	if p.ItemName != nil {
		item.ItemName = *p.ItemName
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.IsPacked != nil {
		item.IsPacked = *p.IsPacked
	}
}
