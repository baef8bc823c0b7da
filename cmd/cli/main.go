package main

import (
	"context"
	"log"
	"os"

	"mentcare/infrastructure/config"
	"mentcare/infrastructure/di"
	"mentcare/interfaces/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Logger.Sync()

	menu := cli.NewMenu(
		container.CommandBus,
		container.QueryBus,
		container.ReportService,
		os.Stdin,
		os.Stdout,
	)

	if err := menu.Run(ctx); err != nil {
		log.Fatalf("Menu failed: %v", err)
	}
}
