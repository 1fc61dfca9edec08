package response

import (
	"time"

	"github.com/go-meet/roomadmin/internal/model"
)

// RoomResponse represents a room response
type RoomResponse struct {
	ID              int64              `json:"id"`
	RoomID          string             `json:"room_id"`
	RoomTitle       string             `json:"room_title"`
	Description     string             `json:"description"`
	ModeratorPass   string             `json:"moderator_pass"`
	AttendeePass    string             `json:"attendee_pass"`
	WelcomeMessage  string             `json:"welcome_message"`
	MaxParticipants int                `json:"max_participants"`
	Metadata        model.RoomMetadata `json:"room_metadata"`
	Published       int                `json:"published"`
	CreatedBy       string             `json:"created_by"`
	ModifiedBy      string             `json:"modified_by,omitempty"`
	Created         string             `json:"created"`
	Modified        string             `json:"modified"`
}

// NewRoomResponse creates a room response from model
func NewRoomResponse(room *model.Room) *RoomResponse {
	return &RoomResponse{
		ID:              room.ID,
		RoomID:          room.RoomID,
		RoomTitle:       room.RoomTitle,
		Description:     room.Description,
		ModeratorPass:   room.ModeratorPass,
		AttendeePass:    room.AttendeePass,
		WelcomeMessage:  room.WelcomeMessage,
		MaxParticipants: room.MaxParticipants,
		Metadata:        room.Metadata,
		Published:       room.Published,
		CreatedBy:       room.CreatedBy,
		ModifiedBy:      room.GetModifiedBy(),
		Created:         room.Created.Format(time.RFC3339),
		Modified:        room.Modified.Format(time.RFC3339),
	}
}

// RoomListResponse represents a paginated list of rooms
type RoomListResponse struct {
	Rooms  []*RoomResponse `json:"rooms"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// NewRoomListResponse creates a room list response
func NewRoomListResponse(rooms []*model.Room, total, limit, offset int) *RoomListResponse {
	roomResponses := make([]*RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = NewRoomResponse(room)
	}

	return &RoomListResponse{
		Rooms:  roomResponses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}
