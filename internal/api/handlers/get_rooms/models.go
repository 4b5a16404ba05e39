package get_rooms

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-LuxoraClient/internal/service/rooms"
)

// RoomsQuery параметры запроса каталога
type RoomsQuery struct {
	Type    string
	Query   string
	Sort    rooms.Sort
	Refresh bool
}

func parseQuery(values url.Values) (RoomsQuery, bool) {
	q := RoomsQuery{
		Type:  values.Get("type"),
		Query: values.Get("q"),
		Sort:  rooms.Sort(values.Get("sort")),
	}

	switch q.Sort {
	case "", rooms.SortRecommended, rooms.SortPriceAsc, rooms.SortPriceDesc, rooms.SortRatingDesc:
	default:
		return q, false
	}

	if raw := values.Get("refresh"); raw != "" {
		refresh, err := strconv.ParseBool(raw)
		if err != nil {
			return q, false
		}
		q.Refresh = refresh
	}
	return q, true
}

// ToFilter конвертирует параметры в фильтр сервиса
func (q RoomsQuery) ToFilter() rooms.RoomFilter {
	return rooms.RoomFilter{
		Type:  q.Type,
		Query: q.Query,
		Sort:  q.Sort,
	}
}
