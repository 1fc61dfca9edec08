package response

import (
	"github.com/go-meet/roomadmin/internal/model"
)

// RecordingListResponse represents one page of recordings
type RecordingListResponse struct {
	TotalRecordings int64             `json:"total_recordings"`
	From            int               `json:"from"`
	Limit           int               `json:"limit"`
	OrderBy         string            `json:"order_by"`
	Recordings      []model.Recording `json:"recordings"`
}

// NewRecordingListResponse creates a recording list response from a page
func NewRecordingListResponse(page *model.RecordingPage) *RecordingListResponse {
	recordings := page.RecordingsList
	if recordings == nil {
		recordings = []model.Recording{}
	}

	return &RecordingListResponse{
		TotalRecordings: page.TotalRecordings,
		From:            page.From,
		Limit:           page.Limit,
		OrderBy:         page.OrderBy,
		Recordings:      recordings,
	}
}

// DownloadLinkResponse carries a ready-to-use recording download URL.
// The embedded token is short-lived.
type DownloadLinkResponse struct {
	RecordID    string `json:"record_id"`
	DownloadURL string `json:"download_url"`
}

// DeleteRecordingResponse reports the outcome of a recording deletion
type DeleteRecordingResponse struct {
	RecordID string `json:"record_id"`
	Msg      string `json:"msg"`
}
