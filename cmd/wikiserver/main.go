package main

import (
	"context"
	"log"

	"github.com/AaronBlvde/wiki-platform/internal/wiki"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := wiki.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
