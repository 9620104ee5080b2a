package main

import (
	"context"

	"github.com/AaronBlvde/wiki-platform/internal/client/cli"
	"github.com/AaronBlvde/wiki-platform/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(context.Background())
}
