package request

import "github.com/go-meet/roomadmin/internal/model"

// SaveRoomRequest carries the room form for both create and update.
// Blank passwords are generated server-side; a nil metadata bundle gets
// the defaults; a nil published flag means published.
type SaveRoomRequest struct {
	RoomTitle       string              `json:"room_title" binding:"required"`
	Description     string              `json:"description"`
	ModeratorPass   string              `json:"moderator_pass"`
	AttendeePass    string              `json:"attendee_pass"`
	WelcomeMessage  string              `json:"welcome_message"`
	MaxParticipants int                 `json:"max_participants"`
	Metadata        *model.RoomMetadata `json:"room_metadata"`
	Published       *int                `json:"published"`
}

// ListRoomsRequest carries listing pagination
type ListRoomsRequest struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
