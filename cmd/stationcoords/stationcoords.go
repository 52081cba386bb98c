package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/stationcoords/pkg/dataimporter"
	"github.com/travigo/stationcoords/pkg/enricher"
	"github.com/travigo/stationcoords/pkg/export"
	"github.com/travigo/stationcoords/pkg/stationcode"
	"github.com/urfave/cli/v2"
)

func main() {
	// Real environment variables win over .env
	_ = godotenv.Load()

	if os.Getenv("STATIONCOORDS_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("STATIONCOORDS_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	log.Logger = log.With().Str("run", uuid.NewString()).Logger()

	app := &cli.App{
		Name:        "stationcoords",
		Description: "Builds the Singapore MRT/LRT station list with coordinates",

		Commands: []*cli.Command{
			enricher.RegisterCLI(),
			export.RegisterCLI(),
			dataimporter.RegisterCLI(),
			stationcode.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
