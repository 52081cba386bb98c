package stationcode

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Print station codes in line, number & suffix order",
		ArgsUsage: "<code>...",
		Action: func(c *cli.Context) error {
			codes := c.Args().Slice()
			Sort(codes)

			for _, code := range codes {
				fmt.Fprintln(c.App.Writer, code)
			}

			return nil
		},
	}
}
