package enricher

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stationcoords/pkg/catalog"
	"github.com/travigo/stationcoords/pkg/config"
	"github.com/travigo/stationcoords/pkg/dataimporter"
	"github.com/travigo/stationcoords/pkg/dataimporter/formats/futurestations"
	"github.com/travigo/stationcoords/pkg/dataimporter/manager"
	"github.com/travigo/stationcoords/pkg/export"
	"github.com/travigo/stationcoords/pkg/geocoder"
)

// Run downloads the catalogue, merges the future stations, resolves coordinates and writes every output
func Run(ctx context.Context, runConfig *config.Config) error {
	views := []*export.View{}
	for _, output := range runConfig.Outputs {
		view, err := export.NewView(output.Name, output.Filter, output.Formats)
		if err != nil {
			return err
		}
		views = append(views, view)
	}

	registered, err := dataimporter.LoadDataSets(runConfig.DataSources)
	if err != nil {
		return err
	}

	dataset, err := manager.GetDataset(registered, runConfig.Dataset)
	if err != nil {
		return err
	}

	stationKeys, err := manager.ImportDataset(ctx, &dataset)
	if err != nil {
		return fmt.Errorf("failed to import station catalogue: %w", err)
	}

	stations := catalog.FromKeys(stationKeys)

	merged, err := mergeFutureStations(stations, runConfig.FutureStations)
	if err != nil {
		return err
	}
	log.Info().Int("merged", merged).Strs("codes", stations.FutureCodes()).Msg("Merged future stations")

	driver, err := newDriver(runConfig)
	if err != nil {
		return err
	}

	summary := driver.Enrich(ctx, stations)
	log.Info().
		Int("stations", summary.Stations).
		Int("resolved", summary.ResolvedTotal()).
		Interface("sources", summary.Resolved).
		Int("supplied", summary.Supplied).
		Int("unresolved", summary.Unresolved).
		Int("failed_lookups", summary.FailedLookups).
		Msg("Finished resolving stations")

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(runConfig.OutputDir, 0o755); err != nil {
		return err
	}

	for _, view := range views {
		if _, err := export.WriteView(runConfig.OutputDir, view, stations); err != nil {
			return fmt.Errorf("failed to write %s: %w", view.Name, err)
		}
	}

	if _, err := export.KMLFromCSV(runConfig.FutureStations.Path); err != nil {
		return fmt.Errorf("failed to render future stations: %w", err)
	}

	return nil
}

func mergeFutureStations(stations *catalog.Catalog, futureConfig config.FutureStations) (int, error) {
	file, err := os.Open(futureConfig.Path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	future := &futurestations.FutureStations{Encoding: futureConfig.Encoding}
	if err := future.ParseFile(file); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", futureConfig.Path, err)
	}

	futureStations, err := future.Stations()
	if err != nil {
		return 0, err
	}

	return stations.MergeFuture(futureStations), nil
}

func newDriver(runConfig *config.Config) (*Driver, error) {
	oneMapOptions, err := runConfig.OneMap.ClientOptions()
	if err != nil {
		return nil, err
	}

	overpassOptions, err := runConfig.Overpass.ClientOptions()
	if err != nil {
		return nil, err
	}

	oneMap := geocoder.NewOneMap(runConfig.OneMap.Endpoint, oneMapOptions)
	overpass := geocoder.NewOverpass(runConfig.Overpass.Endpoint, runConfig.Overpass.Country, overpassOptions)

	return &Driver{
		Steps: Steps(oneMap, runConfig.OneMap.Suffixes, overpass),
	}, nil
}
