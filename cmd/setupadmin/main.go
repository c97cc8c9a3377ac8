package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/auth"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/config"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/db"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"
)

// setupadmin provisions or resets the admin credential. Resetting bumps the
// token epoch, so any outstanding sessions stop working immediately.
func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if len(*username) < 3 {
		log.Fatal("username must be at least 3 characters")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	client, database := db.Connect(cfg)
	defer db.Disconnect(client)

	repo := auth.NewRepository(database)

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := repo.FindByUsername(ctx, *username)
	if err != nil {
		log.Fatalf("failed to look up admin: %v", err)
	}

	if existing != nil {
		if err := repo.RotatePassword(ctx, *username, hash); err != nil {
			log.Fatalf("failed to reset admin password: %v", err)
		}
		log.Printf("admin %q password reset", *username)
		return
	}

	now := time.Now().UTC()
	cred := &auth.Credential{
		Username:     *username,
		PasswordHash: hash,
		TokenEpoch:   0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, cred); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	log.Printf("admin %q created", *username)
}
