package rooms

import (
	"math"
	"sort"
	"strings"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
)

// Rating стабильная демонстрационная оценка: 4.6 + (id mod 5) * 0.1
func Rating(room *domain.Room) float64 {
	id := room.ID
	if id == 0 {
		id = 1
	}
	bump := float64(((id%5)+5)%5) * 0.1
	return math.Round((4.6+bump)*10) / 10
}

// OriginalPrice цена "до скидки" для отображения: +15%, округлено
func OriginalPrice(room *domain.Room) float64 {
	return math.Round(room.Price * 1.15)
}

func toView(room domain.Room) RoomView {
	return RoomView{
		Room:          room,
		Image:         room.ImageOrFallback(),
		Rating:        Rating(&room),
		OriginalPrice: OriginalPrice(&room),
	}
}

// roomTypes "All" и уникальные типы в порядке появления
func roomTypes(list []domain.Room) []string {
	types := []string{domain.FilterAll}
	seen := make(map[string]struct{})
	for i := range list {
		t := list[i].RoomType
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	return types
}

func matchesQuery(room *domain.Room, q string) bool {
	for _, field := range []string{room.Name, room.Description, room.RoomType} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// applyFilter фильтр по типу (точное совпадение), поиск по name/description/room_type, сортировка
func applyFilter(list []domain.Room, f RoomFilter) []domain.Room {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]domain.Room, 0, len(list))
	for i := range list {
		room := &list[i]
		if f.Type != "" && f.Type != domain.FilterAll && room.RoomType != f.Type {
			continue
		}
		if q != "" && !matchesQuery(room, q) {
			continue
		}
		out = append(out, *room)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return Rating(&out[i]) > Rating(&out[j]) })
	}

	return out
}
