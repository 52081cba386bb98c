package dataimporter

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/stationcoords/pkg/catalog"
	"github.com/travigo/stationcoords/pkg/dataimporter/datasets"
	"github.com/travigo/stationcoords/pkg/dataimporter/manager"
	"github.com/travigo/stationcoords/pkg/export"
	"github.com/urfave/cli/v2"
)

// LoadDataSets returns the built in datasets plus any defined in the yaml files under dir
func LoadDataSets(dir string) ([]datasets.DataSet, error) {
	registered, err := manager.GetRegisteredDataSets(manager.DefaultDataSources())
	if err != nil {
		return nil, err
	}

	if dir == "" {
		return registered, nil
	}

	extra, err := manager.GetRegisteredDataSets(os.DirFS(dir))
	if err != nil {
		return nil, err
	}

	return append(registered, extra...), nil
}

func RegisterCLI() *cli.Command {
	datasourcesFlag := &cli.StringFlag{
		Name:    "datasources",
		Usage:   "Directory of extra datasource yaml files",
		EnvVars: []string{"STATIONCOORDS_DATASOURCES"},
	}

	return &cli.Command{
		Name:  "datasets",
		Usage: "List & import the registered station catalogue datasets",
		Flags: []cli.Flag{datasourcesFlag},
		Action: func(c *cli.Context) error {
			registered, err := LoadDataSets(c.String("datasources"))
			if err != nil {
				return err
			}

			for _, dataset := range registered {
				pretty.Println(dataset)
			}

			return nil
		},
		Subcommands: []*cli.Command{
			{
				Name:  "import",
				Usage: "Download a dataset and print its stations as CSV",
				Flags: []cli.Flag{
					datasourcesFlag,
					&cli.StringFlag{
						Name:     "id",
						Usage:    "ID of the dataset",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "Write the CSV to this file instead of stdout",
					},
				},
				Action: func(c *cli.Context) error {
					ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
					defer stop()

					registered, err := LoadDataSets(c.String("datasources"))
					if err != nil {
						return err
					}

					dataset, err := manager.GetDataset(registered, c.String("id"))
					if err != nil {
						return err
					}

					stationKeys, err := manager.ImportDataset(ctx, &dataset)
					if err != nil {
						return err
					}

					log.Debug().Int("stations", len(stationKeys)).Msg("Writing stations")

					stations := catalog.FromKeys(stationKeys).Sorted()

					if c.IsSet("output") {
						return export.WriteCSVFile(c.String("output"), stations)
					}

					return export.WriteCSV(c.App.Writer, stations)
				},
			},
		},
	}
}
