package main

import (
	"context"
	"log"

	"github.com/AaronBlvde/wiki-platform/internal/identity"
	"github.com/AaronBlvde/wiki-platform/internal/identity/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := identity.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
