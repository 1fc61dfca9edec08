package model

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Room publication states. Stored as an integer column.
const (
	RoomUnpublished = 0
	RoomPublished   = 1
)

// Room is a locally persisted meeting configuration. The room_id is
// allocated once by the meeting server at creation time and never changes.
type Room struct {
	ID              int64          `db:"id" json:"id"`
	RoomID          string         `db:"room_id" json:"room_id"`
	RoomTitle       string         `db:"room_title" json:"room_title"`
	Description     string         `db:"description" json:"description"`
	ModeratorPass   string         `db:"moderator_pass" json:"moderator_pass"`
	AttendeePass    string         `db:"attendee_pass" json:"attendee_pass"`
	WelcomeMessage  string         `db:"welcome_message" json:"welcome_message"`
	MaxParticipants int            `db:"max_participants" json:"max_participants"`
	Metadata        RoomMetadata   `db:"room_metadata" json:"room_metadata"`
	Published       int            `db:"published" json:"published"`
	CreatedBy       string         `db:"created_by" json:"created_by"`
	ModifiedBy      sql.NullString `db:"modified_by" json:"modified_by,omitempty"`
	Created         time.Time      `db:"created" json:"created"`
	Modified        time.Time      `db:"modified" json:"modified"`
}

// IsPublished checks if the room is visible to attendees
func (r *Room) IsPublished() bool {
	return r.Published == RoomPublished
}

// GetModifiedBy returns the last editor or empty string
func (r *Room) GetModifiedBy() string {
	if r.ModifiedBy.Valid {
		return r.ModifiedBy.String
	}
	return ""
}

// SetModifiedBy records the editing admin, keeping NULL for empty actors
func (r *Room) SetModifiedBy(actor string) {
	r.ModifiedBy = sql.NullString{String: actor, Valid: actor != ""}
}

// RoomMetadata bundles the per-room feature groups. Each group has a fixed
// schema; values use 0/1 the way the meeting server expects them.
type RoomMetadata struct {
	RoomFeatures        RoomFeatures        `json:"room_features"`
	ChatFeatures        ChatFeatures        `json:"chat_features"`
	DefaultLockSettings DefaultLockSettings `json:"default_lock_settings"`

	WhiteboardFeatures    WhiteboardFeatures    `json:"whiteboard_features"`
	SharedNotePadFeatures SharedNotePadFeatures `json:"shared_note_pad_features"`
	ExternalMediaPlayer   ExternalMediaPlayer   `json:"external_media_player_features"`
	WaitingRoomFeatures   WaitingRoomFeatures   `json:"waiting_room_features"`
	BreakoutRoomFeatures  BreakoutRoomFeatures  `json:"breakout_room_features"`
}

type RoomFeatures struct {
	AllowWebcams            int `json:"allow_webcams"`
	MuteOnStart             int `json:"mute_on_start"`
	AllowScreenShare        int `json:"allow_screen_share"`
	AllowRecording          int `json:"allow_recording"`
	AllowRTMP               int `json:"allow_rtmp"`
	AllowViewOtherWebcams   int `json:"allow_view_other_webcams"`
	AllowViewOtherUsersList int `json:"allow_view_other_users_list"`
	AdminOnlyWebcams        int `json:"admin_only_webcams"`
	AllowPolls              int `json:"allow_polls"`
	// RoomDuration is in minutes, 0 means unlimited.
	RoomDuration int `json:"room_duration"`
}

type ChatFeatures struct {
	AllowChat       int `json:"allow_chat"`
	AllowFileUpload int `json:"allow_file_upload"`
}

type DefaultLockSettings struct {
	LockMicrophone    int `json:"lock_microphone"`
	LockWebcam        int `json:"lock_webcam"`
	LockScreenSharing int `json:"lock_screen_sharing"`
	LockWhiteboard    int `json:"lock_whiteboard"`
	LockSharedNotepad int `json:"lock_shared_notepad"`
	LockChat          int `json:"lock_chat"`
	LockChatSendMsg   int `json:"lock_chat_send_message"`
	LockChatFileShare int `json:"lock_chat_file_share"`
	LockPrivateChat   int `json:"lock_private_chat"`
}

type WhiteboardFeatures struct {
	AllowedWhiteboard int `json:"allowed_whiteboard"`
}

type SharedNotePadFeatures struct {
	AllowedSharedNotePad int `json:"allowed_shared_note_pad"`
}

type ExternalMediaPlayer struct {
	AllowedExternalMediaPlayer int `json:"allowed_external_media_player"`
}

type WaitingRoomFeatures struct {
	IsActive       int    `json:"is_active"`
	WaitingRoomMsg string `json:"waiting_room_msg"`
}

type BreakoutRoomFeatures struct {
	IsAllow            int `json:"is_allow"`
	AllowedNumberRooms int `json:"allowed_number_rooms"`
}

// DefaultMetadata returns the feature flags a new room starts with.
// The defaults match the meeting server's recommended settings.
func DefaultMetadata() RoomMetadata {
	return RoomMetadata{
		RoomFeatures: RoomFeatures{
			AllowWebcams:            1,
			MuteOnStart:             0,
			AllowScreenShare:        1,
			AllowRecording:          1,
			AllowRTMP:               1,
			AllowViewOtherWebcams:   1,
			AllowViewOtherUsersList: 1,
			AdminOnlyWebcams:        0,
			AllowPolls:              1,
			RoomDuration:            0,
		},
		ChatFeatures: ChatFeatures{
			AllowChat:       1,
			AllowFileUpload: 1,
		},
		DefaultLockSettings: DefaultLockSettings{
			LockScreenSharing: 1,
			LockWhiteboard:    1,
			LockSharedNotepad: 1,
		},
		WhiteboardFeatures:    WhiteboardFeatures{AllowedWhiteboard: 1},
		SharedNotePadFeatures: SharedNotePadFeatures{AllowedSharedNotePad: 1},
		ExternalMediaPlayer:   ExternalMediaPlayer{AllowedExternalMediaPlayer: 1},
		WaitingRoomFeatures:   WaitingRoomFeatures{IsActive: 0},
		BreakoutRoomFeatures:  BreakoutRoomFeatures{IsAllow: 1, AllowedNumberRooms: 6},
	}
}

// Value serializes the metadata bundle for the JSONB column
func (m RoomMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan deserializes the metadata bundle from the JSONB column
func (m *RoomMetadata) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = RoomMetadata{}
		return nil
	default:
		return fmt.Errorf("unsupported type for room metadata: %T", src)
	}
}
