package stationcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSortCommand(t *testing.T) {
	var output bytes.Buffer

	app := &cli.App{
		Name:     "stationcoords",
		Writer:   &output,
		Commands: []*cli.Command{RegisterCLI()},
	}

	err := app.Run([]string{"stationcoords", "sort", "NS10", "NS2", "CC1", "NS2A", "STC"})
	require.NoError(t, err)

	assert.Equal(t, "CC1\nNS2\nNS2A\nNS10\nSTC\n", output.String())
}
