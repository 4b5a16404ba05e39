package rooms

import "github.com/m04kA/SMC-LuxoraClient/internal/domain"

// Sort порядок каталога
type Sort string

const (
	SortRecommended Sort = "recommended"
	SortPriceAsc    Sort = "price_asc"
	SortPriceDesc   Sort = "price_desc"
	SortRatingDesc  Sort = "rating_desc"
)

// RoomFilter параметры фильтрации каталога. Пустые поля не фильтруют.
type RoomFilter struct {
	Type  string
	Query string
	Sort  Sort
}

// RoomView номер с производными полями для отображения
type RoomView struct {
	domain.Room
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	OriginalPrice float64 `json:"original_price"`
}

// Catalog снимок каталога для UI
type Catalog struct {
	Rooms     []RoomView `json:"rooms"`
	RoomTypes []string   `json:"room_types"`
	Total     int        `json:"total"`
	Showing   int        `json:"showing"`
	Loading   bool       `json:"loading"`
	Error     string     `json:"error,omitempty"`
}
