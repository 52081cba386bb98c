package export

import (
	"errors"

	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "kml",
		Usage:     "Render station CSV files as KML placemarks",
		ArgsUsage: "<csv>...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("no CSV files given")
			}

			for _, csvPath := range c.Args().Slice() {
				if _, err := KMLFromCSV(csvPath); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
