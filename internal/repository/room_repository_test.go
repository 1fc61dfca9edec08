package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-meet/roomadmin/internal/model"
	"github.com/google/uuid"
)

func newTestRoom(prefix string) *model.Room {
	meta := model.DefaultMetadata()
	meta.RoomFeatures.RoomDuration = 90

	return &model.Room{
		RoomID:          uuid.New().String(),
		RoomTitle:       prefix + "_Weekly Standup",
		Description:     "<p>Agenda inside</p>",
		ModeratorPass:   "mod-pass-1",
		AttendeePass:    "att-pass-1",
		WelcomeMessage:  "Welcome!",
		MaxParticipants: 25,
		Metadata:        meta,
		Published:       model.RoomPublished,
		CreatedBy:       "admin",
	}
}

func TestRoomRepository_Create(t *testing.T) {
	db, prefix := SetupTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)
	ctx := context.Background()

	room := newTestRoom(prefix)
	if err := repo.Create(ctx, room); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	if room.ID == 0 {
		t.Error("Expected room id to be set")
	}
	if room.Created.IsZero() {
		t.Error("Expected created to be set")
	}
}

func TestRoomRepository_Create_DuplicateRoomID(t *testing.T) {
	db, prefix := SetupTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)
	ctx := context.Background()

	room := newTestRoom(prefix)
	if err := repo.Create(ctx, room); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	dup := newTestRoom(prefix)
	dup.RoomID = room.RoomID
	if err := repo.Create(ctx, dup); err != ErrRoomAlreadyExists {
		t.Errorf("Expected ErrRoomAlreadyExists, got %v", err)
	}
}

func TestRoomRepository_MetadataRoundTrip(t *testing.T) {
	db, prefix := SetupTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)
	ctx := context.Background()

	room := newTestRoom(prefix)
	room.Metadata.RoomFeatures.MuteOnStart = 1
	room.Metadata.ChatFeatures.AllowFileUpload = 0
	room.Metadata.DefaultLockSettings.LockPrivateChat = 1
	room.Metadata.WaitingRoomFeatures = model.WaitingRoomFeatures{IsActive: 1, WaitingRoomMsg: "hold on"}

	if err := repo.Create(ctx, room); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	found, err := repo.GetByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("Failed to get room: %v", err)
	}

	if found.Metadata != room.Metadata {
		t.Errorf("Metadata did not round-trip:\nstored %+v\nloaded %+v", room.Metadata, found.Metadata)
	}
}

func TestRoomRepository_GetByID_NotFound(t *testing.T) {
	db, prefix := SetupTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)

	if _, err := repo.GetByID(context.Background(), 1<<60); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomRepository_GetByRoomID(t *testing.T) {
	db, prefix := SetupTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)
	ctx := context.Background()

	room := newTestRoom(prefix)
	if err := repo.Create(ctx, room); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	found, err := repo.GetByRoomID(ctx, room.RoomID)
	if err != nil {
		t.Fatalf("Failed to get room by room_id: %v", err)
	}
	if found.ID != room.ID {
		t.Errorf("Expected id %d, got %d", room.ID, found.ID)
	}
}

func TestRoomRepository_Update(t *testing.T) {
	db, prefix := SetupTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)
	ctx := context.Background()

	room := newTestRoom(prefix)
	if err := repo.Create(ctx, room); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	originalRoomID := room.RoomID

	room.RoomTitle = prefix + "_Renamed"
	room.Published = model.RoomUnpublished
	room.ModifiedBy = sql.NullString{String: "editor", Valid: true}

	if err := repo.Update(ctx, room); err != nil {
		t.Fatalf("Failed to update room: %v", err)
	}

	found, err := repo.GetByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("Failed to get room: %v", err)
	}

	if found.RoomTitle != prefix+"_Renamed" {
		t.Errorf("Expected updated title, got %q", found.RoomTitle)
	}
	if found.RoomID != originalRoomID {
		t.Errorf("Expected room_id to be preserved, got %q", found.RoomID)
	}
	if found.GetModifiedBy() != "editor" {
		t.Errorf("Expected modified_by 'editor', got %q", found.GetModifiedBy())
	}
	if !found.Modified.After(found.Created) && !found.Modified.Equal(found.Created) {
		t.Error("Expected modified to be refreshed")
	}
}

func TestRoomRepository_Update_NotFound(t *testing.T) {
	db, prefix := SetupTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)

	room := newTestRoom(prefix)
	room.ID = 1 << 60
	if err := repo.Update(context.Background(), room); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomRepository_Delete(t *testing.T) {
	db, prefix := SetupTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)
	ctx := context.Background()

	room := newTestRoom(prefix)
	if err := repo.Create(ctx, room); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	if err := repo.Delete(ctx, room.ID); err != nil {
		t.Fatalf("Failed to delete room: %v", err)
	}

	if _, err := repo.GetByID(ctx, room.ID); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound after delete, got %v", err)
	}
}

func TestRoomRepository_Delete_NotFound(t *testing.T) {
	db, prefix := SetupTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)

	if err := repo.Delete(context.Background(), 1<<60); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomRepository_List(t *testing.T) {
	db, prefix := SetupTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		room := newTestRoom(prefix)
		if err := repo.Create(ctx, room); err != nil {
			t.Fatalf("Failed to create room: %v", err)
		}
	}

	rooms, err := repo.List(ctx, 100, 0)
	if err != nil {
		t.Fatalf("Failed to list rooms: %v", err)
	}

	matched := 0
	for _, room := range rooms {
		if len(room.RoomTitle) >= len(prefix) && room.RoomTitle[:len(prefix)] == prefix {
			matched++
		}
	}
	if matched != 3 {
		t.Errorf("Expected 3 rooms with test prefix, got %d", matched)
	}
}
