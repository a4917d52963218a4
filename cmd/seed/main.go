// Command seed writes the built-in sample identities and posts into the
// configured durable storage, replacing whatever is there. Useful for
// resetting a development database.
package main

import (
	"context"
	"encoding/json"
	"log"

	"go.uber.org/zap"

	"inkwell/application/ports"
	"inkwell/application/store"
	"inkwell/infrastructure/auth/localauth"
	"inkwell/infrastructure/config"
	"inkwell/infrastructure/di"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	logger := container.Logger

	users := store.SampleUsers()
	directory, err := json.Marshal(localauth.SeedAccounts(users))
	if err != nil {
		logger.Fatal("encode user directory", zap.Error(err))
	}
	if err := container.Storage.Put(ctx, ports.KeyUserDirectory, directory); err != nil {
		logger.Fatal("write user directory", zap.Error(err))
	}

	posts := store.SamplePosts()
	collection, err := json.Marshal(posts)
	if err != nil {
		logger.Fatal("encode posts", zap.Error(err))
	}
	if err := container.Storage.Put(ctx, ports.KeyPosts, collection); err != nil {
		logger.Fatal("write posts", zap.Error(err))
	}

	if err := container.Storage.Delete(ctx, ports.KeySessionUser); err != nil {
		logger.Fatal("clear session", zap.Error(err))
	}

	logger.Info("storage seeded",
		zap.Int("users", len(users)),
		zap.Int("posts", len(posts)),
		zap.String("storage", cfg.StorageDriver),
	)
}
