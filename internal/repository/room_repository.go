package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-meet/roomadmin/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyExists = errors.New("room already exists")
)

type RoomRepository struct {
	db *sqlx.DB
}

func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create inserts a new room record. The local id and timestamps are
// assigned by the database; room_id must already be allocated.
func (r *RoomRepository) Create(ctx context.Context, room *model.Room) error {
	query := `
		INSERT INTO rooms (room_id, room_title, description, moderator_pass, attendee_pass,
			welcome_message, max_participants, room_metadata, published, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created, modified`

	err := r.db.QueryRowxContext(ctx, query,
		room.RoomID,
		room.RoomTitle,
		room.Description,
		room.ModeratorPass,
		room.AttendeePass,
		room.WelcomeMessage,
		room.MaxParticipants,
		room.Metadata,
		room.Published,
		room.CreatedBy,
	).Scan(&room.ID, &room.Created, &room.Modified)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrRoomAlreadyExists
		}
		return fmt.Errorf("failed to create room: %w", err)
	}

	return nil
}

// GetByID retrieves a room by its local surrogate key
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	var room model.Room
	query := `SELECT * FROM rooms WHERE id = $1`

	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	return &room, nil
}

// GetByRoomID retrieves a room by its meeting-server identifier
func (r *RoomRepository) GetByRoomID(ctx context.Context, roomID string) (*model.Room, error) {
	var room model.Room
	query := `SELECT * FROM rooms WHERE room_id = $1`

	if err := r.db.GetContext(ctx, &room, query, roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room by room_id: %w", err)
	}

	return &room, nil
}

// Update rewrites every editable field of a room keyed by local id.
// room_id, created and created_by are never touched.
func (r *RoomRepository) Update(ctx context.Context, room *model.Room) error {
	query := `
		UPDATE rooms
		SET room_title = $2, description = $3, moderator_pass = $4, attendee_pass = $5,
			welcome_message = $6, max_participants = $7, room_metadata = $8,
			published = $9, modified_by = $10, modified = now()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		room.ID,
		room.RoomTitle,
		room.Description,
		room.ModeratorPass,
		room.AttendeePass,
		room.WelcomeMessage,
		room.MaxParticipants,
		room.Metadata,
		room.Published,
		room.ModifiedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// Delete removes the local room record. The remote room is deliberately
// untouched.
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// List returns rooms most recently created first
func (r *RoomRepository) List(ctx context.Context, limit, offset int) ([]*model.Room, error) {
	query := `
		SELECT * FROM rooms
		ORDER BY created DESC, id DESC
		LIMIT $1 OFFSET $2`

	var rooms []*model.Room
	if err := r.db.SelectContext(ctx, &rooms, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}

// Count counts all room records
func (r *RoomRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM rooms`

	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	// lib/pq unique_violation
	type coder interface {
		SQLState() string
	}
	var c coder
	if errors.As(err, &c) {
		return c.SQLState() == "23505"
	}
	return false
}
