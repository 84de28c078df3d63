package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/rhoconnect-go/internal/app"
	"github.com/MKhiriev/rhoconnect-go/internal/config"
	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("rhoconnect-demo")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("rhoconnect", cfg.RhoConnect.URL != "").
		Str("app_endpoint", cfg.App.Endpoint).
		Msg("received configs")

	ctx := context.Background()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	application, err := app.New(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	if err = application.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error running application")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
