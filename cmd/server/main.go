package main

import (
	"context"
	"log"

	"timeboard/internal/server"
	"timeboard/internal/server/config"
)

func main() {
	ctx := context.Background()

	app, err := server.NewApp(ctx, config.LoadConfig())
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	app.Run(ctx)
}
