package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-meet/roomadmin/internal/config"
	"github.com/go-meet/roomadmin/internal/model"
	"github.com/go-meet/roomadmin/internal/pkg/database"
	"github.com/go-meet/roomadmin/internal/pkg/utils"
	"github.com/go-meet/roomadmin/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Development seed. Room identifiers are fabricated locally instead of
// being allocated from the meeting server, so seeded rooms cannot be
// joined on a real deployment.
func main() {
	log.Println("Starting database seed...")

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	logger := zap.NewNop()
	db, err := database.NewPostgres(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db, logger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	roomRepo := repository.NewRoomRepository(db)

	log.Println("Creating rooms...")
	rooms := []struct {
		title       string
		description string
		welcome     string
		maxPeople   int
		published   int
	}{
		{"Daily Standup", "Short daily sync", "Welcome to the standup!", 15, model.RoomPublished},
		{"All Hands", "Monthly company meeting", "Welcome everyone.", 200, model.RoomPublished},
		{"Design Review", "Weekly design review", "", 10, model.RoomPublished},
		{"Drafts", "Unpublished scratch room", "", 0, model.RoomUnpublished},
	}

	for _, r := range rooms {
		moderatorPass, err := utils.SecureRandomKey(utils.DefaultKeyLength)
		if err != nil {
			log.Fatalf("Failed to generate password: %v", err)
		}
		attendeePass, err := utils.SecureRandomKey(utils.DefaultKeyLength)
		if err != nil {
			log.Fatalf("Failed to generate password: %v", err)
		}

		room := &model.Room{
			RoomID:          uuid.NewString(),
			RoomTitle:       r.title,
			Description:     r.description,
			ModeratorPass:   moderatorPass,
			AttendeePass:    attendeePass,
			WelcomeMessage:  r.welcome,
			MaxParticipants: r.maxPeople,
			Metadata:        model.DefaultMetadata(),
			Published:       r.published,
			CreatedBy:       "seed",
		}

		if err := roomRepo.Create(ctx, room); err != nil {
			log.Printf("Skipping room %q: %v", r.title, err)
			continue
		}

		fmt.Printf("  created room %d %q (moderator: %s, attendee: %s)\n",
			room.ID, room.RoomTitle, room.ModeratorPass, room.AttendeePass)
	}

	log.Println("Seed complete")
}
