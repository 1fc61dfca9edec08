package service

import (
	"context"

	"github.com/go-meet/roomadmin/internal/model"
	apperrors "github.com/go-meet/roomadmin/internal/pkg/errors"
	"github.com/go-meet/roomadmin/internal/pkg/utils"
	"github.com/go-meet/roomadmin/internal/repository"
	"go.uber.org/zap"
)

// RoomStore is the persistence surface the room service needs
type RoomStore interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id int64) (*model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*model.Room, error)
	Count(ctx context.Context) (int, error)
}

// RoomIDAllocator hands out meeting-server room identifiers
type RoomIDAllocator interface {
	AllocateRoomID(ctx context.Context) (string, error)
}

type RoomService struct {
	store     RoomStore
	allocator RoomIDAllocator
	logger    *zap.Logger
}

func NewRoomService(store RoomStore, allocator RoomIDAllocator, logger *zap.Logger) *RoomService {
	return &RoomService{
		store:     store,
		allocator: allocator,
		logger:    logger,
	}
}

// SaveRoomInput represents room create/update input
type SaveRoomInput struct {
	RoomTitle       string
	Description     string
	ModeratorPass   string
	AttendeePass    string
	WelcomeMessage  string
	MaxParticipants int
	Metadata        *model.RoomMetadata
	Published       *int
	Actor           string
}

// validate checks fields shared by create and update, normalizing in place.
// Runs before any allocation or write so a bad request has no side effects.
func (s *RoomService) validate(input *SaveRoomInput) error {
	input.RoomTitle = utils.SanitizeText(input.RoomTitle)
	input.Description = utils.SanitizeDescription(input.Description)
	input.WelcomeMessage = utils.SanitizeDescription(input.WelcomeMessage)

	v := utils.NewValidator()
	v.ValidateRoomTitle("room_title", input.RoomTitle)
	v.ValidateMaxParticipants("max_participants", input.MaxParticipants)
	if v.HasErrors() {
		return apperrors.ErrValidation.WithDetails(v.Errors())
	}

	return nil
}

// fillPasswords generates an independent credential for each blank role,
// then enforces distinctness on the resulting pair. The equality check
// runs even when both credentials were just generated.
func (s *RoomService) fillPasswords(input *SaveRoomInput) error {
	var err error
	if input.ModeratorPass == "" {
		input.ModeratorPass, err = utils.SecureRandomKey(utils.DefaultKeyLength)
		if err != nil {
			return err
		}
	}
	if input.AttendeePass == "" {
		input.AttendeePass, err = utils.SecureRandomKey(utils.DefaultKeyLength)
		if err != nil {
			return err
		}
	}

	if input.ModeratorPass == input.AttendeePass {
		return apperrors.ErrDuplicateCredential
	}

	return nil
}

// Create validates the input, allocates a room identifier from the meeting
// server exactly once, and persists the room. If the insert fails after the
// identifier was allocated it is retried once; a second failure abandons the
// identifier, which is logged and never reused.
func (s *RoomService) Create(ctx context.Context, input *SaveRoomInput) (*model.Room, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	if err := s.fillPasswords(input); err != nil {
		if err == apperrors.ErrDuplicateCredential {
			return nil, err
		}
		s.logger.Error("Failed to generate room credentials", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	roomID, err := s.allocator.AllocateRoomID(ctx)
	if err != nil {
		return nil, err
	}

	metadata := model.DefaultMetadata()
	if input.Metadata != nil {
		metadata = *input.Metadata
	}

	published := model.RoomPublished
	if input.Published != nil {
		published = *input.Published
	}

	room := &model.Room{
		RoomID:          roomID,
		RoomTitle:       input.RoomTitle,
		Description:     input.Description,
		ModeratorPass:   input.ModeratorPass,
		AttendeePass:    input.AttendeePass,
		WelcomeMessage:  input.WelcomeMessage,
		MaxParticipants: input.MaxParticipants,
		Metadata:        metadata,
		Published:       published,
		CreatedBy:       input.Actor,
	}

	if err := s.store.Create(ctx, room); err != nil {
		s.logger.Warn("Room insert failed, retrying once",
			zap.String("room_id", roomID),
			zap.Error(err),
		)
		if err := s.store.Create(ctx, room); err != nil {
			s.logger.Error("Room insert failed after retry, abandoning allocated room id",
				zap.String("room_id", roomID),
				zap.Error(err),
			)
			return nil, apperrors.ErrPersistence
		}
	}

	return room, nil
}

// Update rewrites the editable fields of an existing room. The room
// identifier is immutable; no allocation happens here.
func (s *RoomService) Update(ctx context.Context, id int64, input *SaveRoomInput) (*model.Room, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	if err := s.fillPasswords(input); err != nil {
		if err == apperrors.ErrDuplicateCredential {
			return nil, err
		}
		s.logger.Error("Failed to generate room credentials", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.RoomTitle = input.RoomTitle
	room.Description = input.Description
	room.ModeratorPass = input.ModeratorPass
	room.AttendeePass = input.AttendeePass
	room.WelcomeMessage = input.WelcomeMessage
	room.MaxParticipants = input.MaxParticipants
	if input.Metadata != nil {
		room.Metadata = *input.Metadata
	}
	if input.Published != nil {
		room.Published = *input.Published
	}
	room.SetModifiedBy(input.Actor)

	if err := s.store.Update(ctx, room); err != nil {
		if err == repository.ErrRoomNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to update room", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrPersistence
	}

	return room, nil
}

// GetByID retrieves a room by its local id
func (s *RoomService) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	if id <= 0 {
		return nil, apperrors.ErrInvalidArgument.WithMessage("room id must be positive")
	}

	room, err := s.store.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to get room", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	return room, nil
}

// Delete removes the local room record only. Recordings and any remote
// state for the room survive on the meeting server.
func (s *RoomService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrInvalidArgument.WithMessage("room id must be positive")
	}

	room, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if err == repository.ErrRoomNotFound {
			return apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to delete room", zap.Int64("id", id), zap.Error(err))
		return apperrors.ErrPersistence
	}

	s.logger.Info("Room deleted locally, remote room untouched",
		zap.Int64("id", id),
		zap.String("room_id", room.RoomID),
	)

	return nil
}

// List returns a page of rooms with the total count
func (s *RoomService) List(ctx context.Context, limit, offset int) ([]*model.Room, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rooms, err := s.store.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list rooms", zap.Error(err))
		return nil, 0, apperrors.ErrInternal
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count rooms", zap.Error(err))
		return nil, 0, apperrors.ErrInternal
	}

	return rooms, total, nil
}
