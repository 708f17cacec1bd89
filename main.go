package main

import (
	"context"
	"log"

	"churnreport/internal/config"
	"churnreport/internal/container"
	"churnreport/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown()

	r, err := appContainer.Generate(context.Background())
	if err != nil {
		appContainer.Logger.Fatalf("Failed to generate report: %v", err)
	}

	app, err := ui.NewApp(ui.Config{
		Report:    r,
		AssetsDir: appConfig.Report.AssetsDir,
		Logger:    appContainer.Logger,
	})
	if err != nil {
		appContainer.Logger.Fatalf("Failed to create UI app: %v", err)
	}

	appContainer.Logger.Fatal(app.Start(":" + appConfig.Server.Port))
}
