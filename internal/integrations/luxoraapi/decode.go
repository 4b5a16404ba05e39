package luxoraapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
)

// Ответы backend на создание бронирования и на вход бывают разной формы.
// Все формы разбираются здесь и приводятся к одной внутренней модели сразу после вызова.

// decodeCreatedBooking классифицирует ответ на создание:
//   - {"booking": {"bookingId"|"booking_id"|"id": ...}}
//   - {"booking_id": ...}
//   - {"id": ...}
//   - иначе код генерируется
func decodeCreatedBooking(raw json.RawMessage) *CreatedBooking {
	obj := asObject(raw)

	result := &CreatedBooking{Shape: ShapeUnknown}
	if msg, ok := rawString(obj["message"]); ok {
		result.Message = msg
	}

	if nested := asObject(obj["booking"]); nested != nil {
		if id, ok := rawInt(nested["id"]); ok {
			result.ID = id
		}
		for _, key := range []string{"bookingId", "booking_id", "id"} {
			if code, ok := rawString(nested[key]); ok && code != "" {
				result.Shape = ShapeNestedBooking
				result.BookingCode = code
				return result
			}
		}
	}

	if code, ok := rawString(obj["booking_id"]); ok && code != "" {
		result.Shape = ShapeTopLevelCode
		result.BookingCode = code
		if id, ok := rawInt(obj["id"]); ok {
			result.ID = id
		}
		return result
	}

	if code, ok := rawString(obj["id"]); ok && code != "" {
		result.Shape = ShapeTopLevelID
		result.BookingCode = code
		if id, ok := rawInt(obj["id"]); ok {
			result.ID = id
		}
		return result
	}

	result.BookingCode = "LUX-" + strings.ToUpper(uuid.NewString()[:8])
	return result
}

// decodeLoginResult принимает {access_token, token_type, user} либо пользователя с id на верхнем уровне
func decodeLoginResult(raw json.RawMessage) *LoginResult {
	obj := asObject(raw)
	result := &LoginResult{}

	result.AccessToken, _ = rawString(obj["access_token"])
	result.TokenType, _ = rawString(obj["token_type"])

	if nested := obj["user"]; nested != nil {
		if user := decodeUser(nested); user != nil {
			result.User = user
			return result
		}
	}

	if _, ok := rawInt(obj["id"]); ok {
		result.User = decodeUser(raw)
	}

	return result
}

// decodeMe принимает {user: {...}} или пользователя напрямую
func decodeMe(raw json.RawMessage) *User {
	obj := asObject(raw)
	if nested := obj["user"]; nested != nil {
		if user := decodeUser(nested); user != nil {
			return user
		}
	}
	return decodeUser(raw)
}

// decodeBookings возвращает пустой список, если ответ не массив
func decodeBookings(raw json.RawMessage) ([]domain.Booking, error) {
	if !isArray(raw) {
		return []domain.Booking{}, nil
	}
	var bookings []domain.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// decodeRooms возвращает пустой список, если ответ не массив
func decodeRooms(raw json.RawMessage) ([]domain.Room, error) {
	if !isArray(raw) {
		return []domain.Room{}, nil
	}
	var rooms []domain.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// decodeCancelledBooking принимает бронирование или {booking: {...}}; nil, если форма неизвестна
func decodeCancelledBooking(raw json.RawMessage) *domain.Booking {
	obj := asObject(raw)
	if obj == nil {
		return nil
	}
	if nested := asObject(obj["booking"]); nested != nil {
		raw = obj["booking"]
	}
	var booking domain.Booking
	if err := json.Unmarshal(raw, &booking); err != nil || booking.ID == 0 {
		return nil
	}
	return &booking
}

func decodeUser(raw json.RawMessage) *User {
	if asObject(raw) == nil {
		return nil
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil
	}
	return &user
}

func asObject(raw json.RawMessage) map[string]json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// rawString читает строку или число как строку
func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

// rawInt читает целое число или строку с целым числом
func rawInt(raw json.RawMessage) (int64, bool) {
	s, ok := rawString(raw)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
