package select_room

// SelectRoomRequest HTTP request model. room_id имеет приоритет над room_type.
type SelectRoomRequest struct {
	RoomID   *int64 `json:"room_id,omitempty"`
	RoomType string `json:"room_type,omitempty"`
}
