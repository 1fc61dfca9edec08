package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-meet/roomadmin/internal/config"
	"github.com/go-meet/roomadmin/internal/model"
	apperrors "github.com/go-meet/roomadmin/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	pathAllocateRoomID   = "/auth/room/getUUID"
	pathFetchRecordings  = "/auth/recording/fetch"
	pathGetDownloadToken = "/auth/recording/getDownloadToken"
	pathDeleteRecording  = "/auth/recording/delete"
)

// Client talks to the remote meeting server's admin API. Calls are
// synchronous and single-attempt; a transport failure is terminal for the
// request.
type Client struct {
	serverURL  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg *config.MeetingConfig, logger *zap.Logger) *Client {
	return &Client{
		serverURL: cfg.ServerURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// ServerURL returns the configured meeting server base URL
func (c *Client) ServerURL() string {
	return c.serverURL
}

type envelope struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
}

type allocateRoomIDResponse struct {
	envelope
	RoomID string `json:"room_id"`
}

type fetchRecordingsRequest struct {
	RoomIDs []string `json:"room_ids"`
	From    int      `json:"from"`
	Limit   int      `json:"limit"`
	OrderBy string   `json:"order_by"`
}

type fetchRecordingsResponse struct {
	envelope
	Result model.RecordingPage `json:"result"`
}

type recordingRequest struct {
	RecordID string `json:"record_id"`
}

type downloadTokenResponse struct {
	envelope
	Token string `json:"token"`
}

// AllocateRoomID requests a fresh globally-unique room identifier from the
// meeting server. It is called exactly once per room, at creation time.
func (c *Client) AllocateRoomID(ctx context.Context) (string, error) {
	var resp allocateRoomIDResponse
	if err := c.call(ctx, pathAllocateRoomID, struct{}{}, &resp); err != nil {
		return "", err
	}

	if !resp.Status || resp.RoomID == "" {
		return "", apperrors.ErrGatewayRejected.WithMessage(resp.Msg)
	}

	return resp.RoomID, nil
}

// GetRecordings lists recordings scoped to the given room identifiers,
// ordered by creation time. An empty room set yields an empty page without
// a server call, so a caller can never issue an unscoped listing.
func (c *Client) GetRecordings(ctx context.Context, roomIDs []string, from, limit int, orderBy string) (*model.RecordingPage, error) {
	if len(roomIDs) == 0 {
		return &model.RecordingPage{
			From:           from,
			Limit:          limit,
			OrderBy:        orderBy,
			RecordingsList: []model.Recording{},
		}, nil
	}

	req := fetchRecordingsRequest{
		RoomIDs: roomIDs,
		From:    from,
		Limit:   limit,
		OrderBy: orderBy,
	}

	var resp fetchRecordingsResponse
	if err := c.call(ctx, pathFetchRecordings, req, &resp); err != nil {
		return nil, err
	}

	if !resp.Status {
		return nil, apperrors.ErrGatewayRejected.WithMessage(resp.Msg)
	}

	if resp.Result.RecordingsList == nil {
		resp.Result.RecordingsList = []model.Recording{}
	}

	return &resp.Result, nil
}

// GetDownloadToken exchanges a recording id for a short-lived download
// token. The caller composes the final URL from the configured server URL.
func (c *Client) GetDownloadToken(ctx context.Context, recordID string) (string, error) {
	var resp downloadTokenResponse
	if err := c.call(ctx, pathGetDownloadToken, recordingRequest{RecordID: recordID}, &resp); err != nil {
		return "", err
	}

	if !resp.Status || resp.Token == "" {
		return "", apperrors.ErrRecordingNotFound.WithMessage(resp.Msg)
	}

	return resp.Token, nil
}

// DeleteRecording deletes a recording on the meeting server. Idempotency is
// the server's contract; this client surfaces whatever the server reports.
func (c *Client) DeleteRecording(ctx context.Context, recordID string) (string, error) {
	var resp envelope
	if err := c.call(ctx, pathDeleteRecording, recordingRequest{RecordID: recordID}, &resp); err != nil {
		return "", err
	}

	if !resp.Status {
		return "", apperrors.ErrRecordingNotFound.WithMessage(resp.Msg)
	}

	return resp.Msg, nil
}

// call performs a signed POST against the meeting server API and decodes
// the JSON response. Transport failures map to ErrGatewayUnavailable,
// non-2xx responses to ErrGatewayRejected.
func (c *Client) call(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(err, http.StatusInternalServerError, "failed to encode gateway request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, bytes.NewReader(body))
	if err != nil {
		return apperrors.Wrap(err, http.StatusInternalServerError, "failed to build gateway request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("API-KEY", c.apiKey)
	req.Header.Set("HASH-SECRET", Sign(body, c.apiSecret))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Meeting server unreachable",
			zap.String("path", path),
			zap.Error(err),
		)
		return apperrors.Wrap(err, http.StatusBadGateway, apperrors.ErrGatewayUnavailable.Message)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(err, http.StatusBadGateway, apperrors.ErrGatewayUnavailable.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Meeting server rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return apperrors.Wrap(
			fmt.Errorf("meeting server returned %d", resp.StatusCode),
			http.StatusBadGateway,
			apperrors.ErrGatewayRejected.Message,
		)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return apperrors.Wrap(err, http.StatusBadGateway, "failed to decode gateway response")
	}

	return nil
}
