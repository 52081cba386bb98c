package dataimporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/stationcoords/pkg/dataimporter/datasets"
	"github.com/travigo/stationcoords/pkg/dataimporter/manager"
)

func TestLoadDataSets(t *testing.T) {
	registered, err := LoadDataSets("")
	require.NoError(t, err)

	_, err = manager.GetDataset(registered, "sg-lta-train-station-codes")
	assert.NoError(t, err)
}

func TestLoadDataSetsWithDirectory(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "local.yaml"), []byte(`
identifier: local
region: SG
provider:
  name: Local
datasets:
  - identifier: stations
    format: xlsx
    source: /data/stations.xlsx
    unpackbundle: none
`), 0o644)
	require.NoError(t, err)

	registered, err := LoadDataSets(dir)
	require.NoError(t, err)

	dataset, err := manager.GetDataset(registered, "local-stations")
	require.NoError(t, err)
	assert.Equal(t, datasets.DataSetFormatXLSX, dataset.Format)
	assert.Equal(t, "Local", dataset.Provider.Name)

	_, err = manager.GetDataset(registered, "sg-lta-train-station-codes")
	assert.NoError(t, err)
}
