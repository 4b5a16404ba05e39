package luxoraapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
)

// GetRooms получает каталог номеров
func (c *Client) GetRooms(ctx context.Context) ([]domain.Room, error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodGet, "/rooms", nil, &raw); err != nil {
		return nil, err
	}

	rooms, err := decodeRooms(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode rooms: %v", ErrInvalidResponse, err)
	}
	return rooms, nil
}

// InitSampleRooms заполняет каталог тестовыми номерами (только для разработки)
func (c *Client) InitSampleRooms(ctx context.Context) error {
	if !c.allowSeeding {
		return ErrSeedingDisabled
	}
	return c.Request(ctx, http.MethodPost, "/rooms/init-sample-data", nil, nil)
}
