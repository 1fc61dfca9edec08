package model

// Recording is a read-through view of a recording held by the meeting
// server. It is never persisted locally; the file reference must be
// exchanged for a short-lived token before download.
type Recording struct {
	RecordID         string  `json:"record_id"`
	RoomID           string  `json:"room_id"`
	RoomSID          string  `json:"room_sid"`
	FilePath         string  `json:"file_path"`
	FileSize         float64 `json:"file_size"`
	CreationTime     int64   `json:"creation_time"`
	RoomCreationTime int64   `json:"room_creation_time"`
}

// RecordingPage is one page of a room-scoped recording listing
type RecordingPage struct {
	TotalRecordings int64       `json:"total_recordings"`
	From            int         `json:"from"`
	Limit           int         `json:"limit"`
	OrderBy         string      `json:"order_by"`
	RecordingsList  []Recording `json:"recordings_list"`
}
