package request

// ListRecordingsRequest carries a room-scoped recording query
type ListRecordingsRequest struct {
	RoomID  string `form:"room_id"`
	From    int    `form:"from,default=0"`
	Limit   int    `form:"limit,default=20"`
	OrderBy string `form:"order_by,default=DESC"`
}
