package main

import (
	"context"
	"log"

	"sigkihan-server/cmd/config"
	migration "sigkihan-server/cmd/database/migrate"
	"sigkihan-server/cmd/database/seed"
	"sigkihan-server/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := seed.SeedDefaultFoods(db); err != nil {
		log.Fatalf("failed to seed default foods: %v", err)
	}
	if err := seed.SeedProfileImages(db); err != nil {
		log.Fatalf("failed to seed profile images: %v", err)
	}

	app, scheduler, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scheduler.Start(ctx)

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
