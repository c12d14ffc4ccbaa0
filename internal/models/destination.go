package models

// DestinationCategories — фиксированный словарь категорий направления.
var DestinationCategories = []string{
	"Beach", "Mountains", "Nature", "Cultural", "Historical", "Wildlife",
	"Adventure", "Spiritual", "Archaeological", "City", "Desert", "Safari",
	"Lake", "Scenic", "Waterfalls", "Trekking", "Skiing", "Nature Walks", "Hiking",
}

// ValidDestinationCategory сообщает, входит ли категория в словарь.
func ValidDestinationCategory(c string) bool {
	for _, v := range DestinationCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Destination — запись публичного каталога направлений.
// Не ссылается ни на пользователя, ни на поездку.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Categories  []string `json:"category"`
	BestSeasons []string `json:"best_season"`
	IsDomestic  bool     `json:"is_domestic"`
}

// DummyDestination используется для приёма данных из JSON-запроса
// на создание направления (административный путь).
type DummyDestination struct {
	Name        string   `json:"name" validate:"required"`
	Country     string   `json:"country" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ImageURL    string   `json:"image_url" validate:"required"`
	Categories  []string `json:"category" validate:"required,min=1"`
	BestSeasons []string `json:"best_season" validate:"required,min=1"`
	IsDomestic  bool     `json:"is_domestic"`
}

// ToModel конвертирует запрос в доменную модель.
func (d DummyDestination) ToModel() *Destination {
	return &Destination{
		Name:        d.Name,
		Country:     d.Country,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Categories:  d.Categories,
		BestSeasons: d.BestSeasons,
		IsDomestic:  d.IsDomestic,
	}
}
