package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден в загруженном каталоге
	ErrRoomNotFound = errors.New("room not found")

	// ErrSeedingDisabled возвращается при попытке заполнить каталог в production
	ErrSeedingDisabled = errors.New("sample data seeding is disabled")

	// ErrLoadFailed возвращается, когда каталог не удалось загрузить
	ErrLoadFailed = errors.New("failed to load rooms")
)
