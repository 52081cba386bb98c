package enricher

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stationcoords/pkg/config"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Download the station catalogue, resolve coordinates & write the station files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to a yaml config file",
				EnvVars: []string{"STATIONCOORDS_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "dataset",
				Usage: "ID of the station catalogue dataset",
			},
			&cli.StringFlag{
				Name:  "datasources",
				Usage: "Directory of extra datasource yaml files",
			},
			&cli.StringFlag{
				Name:  "future-stations",
				Usage: "Path to the curated future stations CSV",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "Directory the station files are written to",
			},
		},
		Action: func(c *cli.Context) error {
			runConfig, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			if c.IsSet("dataset") {
				runConfig.Dataset = c.String("dataset")
			}
			if c.IsSet("datasources") {
				runConfig.DataSources = c.String("datasources")
			}
			if c.IsSet("future-stations") {
				runConfig.FutureStations.Path = c.String("future-stations")
			}
			if c.IsSet("output-dir") {
				runConfig.OutputDir = c.String("output-dir")
			}

			if err := runConfig.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			startTime := time.Now()

			if err := Run(ctx, runConfig); err != nil {
				return err
			}

			log.Info().Msgf("Operation took %s", time.Since(startTime).String())

			return nil
		},
	}
}
