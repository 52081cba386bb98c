package manager

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stationcoords/pkg/dataimporter/datasets"
	"gopkg.in/yaml.v3"
)

//go:embed datasources/*.yaml
var embeddedDataSources embed.FS

// DefaultDataSources are the datasource definitions built into the binary
func DefaultDataSources() fs.FS {
	sub, err := fs.Sub(embeddedDataSources, "datasources")
	if err != nil {
		panic(err)
	}

	return sub
}

// GetRegisteredDataSets loads every datasource yaml file (multiple documents allowed) in fsys
func GetRegisteredDataSets(fsys fs.FS) ([]datasets.DataSet, error) {
	var registeredDatasets []datasets.DataSet

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		log.Debug().Str("path", path).Msg("Loading datasource file")

		datasourceYaml, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}

		decoder := yaml.NewDecoder(bytes.NewReader(datasourceYaml))

		for {
			var datasource datasets.DataSource
			err := decoder.Decode(&datasource)
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				return fmt.Errorf("decoding %s: %w", path, err)
			}

			for _, dataset := range datasource.Datasets {
				dataset.Identifier = fmt.Sprintf("%s-%s", datasource.Identifier, dataset.Identifier)
				dataset.DataSourceRef = datasource.Identifier
				dataset.Provider = datasource.Provider

				registeredDatasets = append(registeredDatasets, dataset)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load datasources: %w", err)
	}

	return registeredDatasets, nil
}

func GetDataset(registered []datasets.DataSet, identifier string) (datasets.DataSet, error) {
	for _, dataset := range registered {
		if dataset.Identifier == identifier {
			return dataset, nil
		}
	}

	return datasets.DataSet{}, fmt.Errorf("%w: %s", ErrDatasetNotFound, identifier)
}
