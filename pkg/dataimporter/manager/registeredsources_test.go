package manager

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/stationcoords/pkg/dataimporter/datasets"
)

func TestGetRegisteredDataSets(t *testing.T) {
	fsys := fstest.MapFS{
		"sg.yaml": &fstest.MapFile{Data: []byte(`identifier: sg-lta
provider:
  name: Land Transport Authority
datasets:
  - identifier: codes
    format: xls
    source: https://example.com/codes.zip
    unpackbundle: zip
  - identifier: codes-xlsx
    format: xlsx
    source: https://example.com/codes.xlsx
    unpackbundle: none
    timeout: PT10S
---
identifier: my-mrt
datasets:
  - identifier: stations
    format: xlsx
    source: stations.xlsx
`)},
		"README.md": &fstest.MapFile{Data: []byte("not a datasource")},
	}

	registered, err := GetRegisteredDataSets(fsys)
	require.NoError(t, err)
	require.Len(t, registered, 3)

	assert.Equal(t, datasets.DataSet{
		Identifier:    "sg-lta-codes",
		DataSourceRef: "sg-lta",
		Format:        datasets.DataSetFormatXLS,
		Provider:      datasets.Provider{Name: "Land Transport Authority"},
		Source:        "https://example.com/codes.zip",
		UnpackBundle:  datasets.BundleFormatZIP,
	}, registered[0])
	assert.Equal(t, "PT10S", registered[1].Timeout)
	assert.Equal(t, "my-mrt-stations", registered[2].Identifier)

	dataset, err := GetDataset(registered, "sg-lta-codes-xlsx")
	require.NoError(t, err)
	assert.Equal(t, datasets.DataSetFormatXLSX, dataset.Format)

	_, err = GetDataset(registered, "missing")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestGetRegisteredDataSetsInvalidYaml(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.yaml": &fstest.MapFile{Data: []byte("identifier: [unterminated")},
	}

	_, err := GetRegisteredDataSets(fsys)
	assert.Error(t, err)
}

func TestDefaultDataSources(t *testing.T) {
	registered, err := GetRegisteredDataSets(DefaultDataSources())
	require.NoError(t, err)

	dataset, err := GetDataset(registered, "sg-lta-train-station-codes")
	require.NoError(t, err)

	assert.Equal(t, datasets.DataSetFormatXLS, dataset.Format)
	assert.Equal(t, datasets.BundleFormatZIP, dataset.UnpackBundle)
	assert.Equal(t, "PT30S", dataset.Timeout)
	assert.Equal(t, "Land Transport Authority", dataset.Provider.Name)
}
