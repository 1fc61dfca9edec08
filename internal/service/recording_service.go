package service

import (
	"context"

	"github.com/go-meet/roomadmin/internal/model"
	apperrors "github.com/go-meet/roomadmin/internal/pkg/errors"
	"github.com/go-meet/roomadmin/internal/pkg/utils"
	"go.uber.org/zap"
)

// RecordingGateway is the meeting-server surface the recording service needs
type RecordingGateway interface {
	GetRecordings(ctx context.Context, roomIDs []string, from, limit int, orderBy string) (*model.RecordingPage, error)
	GetDownloadToken(ctx context.Context, recordID string) (string, error)
	DeleteRecording(ctx context.Context, recordID string) (string, error)
	ServerURL() string
}

type RecordingService struct {
	gateway RecordingGateway
	logger  *zap.Logger
}

func NewRecordingService(gateway RecordingGateway, logger *zap.Logger) *RecordingService {
	return &RecordingService{
		gateway: gateway,
		logger:  logger,
	}
}

// ListInput represents recording listing input
type ListInput struct {
	RoomID  string
	From    int
	Limit   int
	OrderBy string
}

// List fetches one page of recordings for a single room. Listings are
// always room-scoped; a blank room id is rejected before any server call.
func (s *RecordingService) List(ctx context.Context, input *ListInput) (*model.RecordingPage, error) {
	if input.RoomID == "" {
		return nil, apperrors.ErrInvalidArgument.WithMessage("room_id is required")
	}

	if input.From < 0 {
		input.From = 0
	}
	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 20
	}
	orderBy := utils.ValidateOrderBy(input.OrderBy)

	page, err := s.gateway.GetRecordings(ctx, []string{input.RoomID}, input.From, input.Limit, orderBy)
	if err != nil {
		return nil, err
	}

	return page, nil
}

// GetDownloadLink exchanges a recording id for a ready-to-use download URL.
// The embedded token is short-lived, so links are minted per request and
// never stored.
func (s *RecordingService) GetDownloadLink(ctx context.Context, recordID string) (string, error) {
	if recordID == "" {
		return "", apperrors.ErrInvalidArgument.WithMessage("record_id is required")
	}

	token, err := s.gateway.GetDownloadToken(ctx, recordID)
	if err != nil {
		return "", err
	}

	return s.gateway.ServerURL() + "/download/recording/" + token, nil
}

// Delete removes a recording from the meeting server
func (s *RecordingService) Delete(ctx context.Context, recordID string) (string, error) {
	if recordID == "" {
		return "", apperrors.ErrInvalidArgument.WithMessage("record_id is required")
	}

	if _, err := s.gateway.DeleteRecording(ctx, recordID); err != nil {
		return "", err
	}

	s.logger.Info("Recording deleted", zap.String("record_id", recordID))

	return "Recording was deleted successfully", nil
}
