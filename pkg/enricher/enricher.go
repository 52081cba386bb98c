package enricher

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stationcoords/pkg/catalog"
	"github.com/travigo/stationcoords/pkg/ctdf"
	"github.com/travigo/stationcoords/pkg/geocoder"
)

// Step is one attempt in the fallback chain
type Step struct {
	Resolver geocoder.Resolver
	Query    func(station *ctdf.Station) string
}

// Driver tries each step in order for every station, stopping at the first that finds coordinates
type Driver struct {
	Steps []Step
}

type Summary struct {
	Stations int
	Resolved map[string]int
	// Future stations that came with coordinates
	Supplied   int
	Unresolved int
	// Lookups that errored, the station carried on to the next step
	FailedLookups int
}

func (s Summary) ResolvedTotal() int {
	total := 0
	for _, count := range s.Resolved {
		total += count
	}

	return total
}

// QueryWithSuffix builds "<CODE> <NAME> <suffix>"
func QueryWithSuffix(suffix string) func(station *ctdf.Station) string {
	return func(station *ctdf.Station) string {
		return fmt.Sprintf("%s %s %s", station.Code, station.Name, suffix)
	}
}

func QueryName(station *ctdf.Station) string {
	return station.Name
}

// Steps searches OneMap once per suffix, then falls back to OpenStreetMap by name
func Steps(oneMap geocoder.Resolver, suffixes []string, overpass geocoder.Resolver) []Step {
	steps := []Step{}
	for _, suffix := range suffixes {
		steps = append(steps, Step{Resolver: oneMap, Query: QueryWithSuffix(suffix)})
	}

	return append(steps, Step{Resolver: overpass, Query: QueryName})
}

// DefaultSteps searches OneMap as an MRT then an LRT station, then OpenStreetMap
func DefaultSteps(oneMap geocoder.Resolver, overpass geocoder.Resolver) []Step {
	return Steps(oneMap, []string{"MRT", "LRT"}, overpass)
}

// Enrich fills in coordinates for the stations in the catalog.
// It never gives up on the whole catalog because of one station. It returns early only when ctx is done.
func (d *Driver) Enrich(ctx context.Context, stations *catalog.Catalog) Summary {
	summary := Summary{
		Resolved: map[string]int{},
	}

	for _, station := range stations.Stations() {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Msg("Stopping enrichment early")
			break
		}

		summary.Stations += 1

		if station.Future && station.HasLocation() {
			log.Debug().Str("station", station.Key().String()).Msg("Keeping supplied coordinates")
			summary.Supplied += 1
			continue
		}

		resolved := false

		for _, step := range d.Steps {
			query := step.Query(station)
			result := step.Resolver.Resolve(ctx, query)

			switch result.Status {
			case geocoder.StatusFound:
				station.SetLocation(result.Location, step.Resolver.Name())
				resolved = true
			case geocoder.StatusFailed:
				summary.FailedLookups += 1
				log.Warn().
					Err(result.Err).
					Str("station", station.Key().String()).
					Str("resolver", step.Resolver.Name()).
					Str("query", query).
					Msg("Lookup failed")
			}

			if resolved {
				break
			}
		}

		if resolved {
			summary.Resolved[station.Source] += 1

			log.Info().
				Str("station", station.Key().String()).
				Str("source", station.Source).
				Str("lat", station.Lat).
				Str("lon", station.Lon).
				Msg("Resolved station")
		} else {
			summary.Unresolved += 1

			log.Info().Str("station", station.Key().String()).Msg("No coordinates found")
		}
	}

	return summary
}
