package export

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stationcoords/pkg/catalog"
)

// WriteView writes every format of the view into dir, returning the paths written.
// KML is rendered from the CSV when both are requested.
func WriteView(dir string, view *View, stations *catalog.Catalog) ([]string, error) {
	selected, err := view.Select(stations)
	if err != nil {
		return nil, err
	}

	base := filepath.Join(dir, view.Name)
	csvPath := base + ".csv"
	writtenCSV := false
	written := []string{}

	for _, format := range view.Formats {
		if format == FormatCSV {
			if err := WriteCSVFile(csvPath, selected); err != nil {
				return written, err
			}
			writtenCSV = true
			written = append(written, csvPath)
		}
	}

	for _, format := range view.Formats {
		switch format {
		case FormatCSV:
		case FormatKML:
			if writtenCSV {
				kmlPath, err := KMLFromCSV(csvPath)
				if err != nil {
					return written, err
				}
				written = append(written, kmlPath)
			} else {
				if err := WriteKMLFile(base+".kml", selected); err != nil {
					return written, err
				}
				written = append(written, base+".kml")
			}
		case FormatGeoJSON:
			if err := WriteGeoJSONFile(base+".geojson", selected); err != nil {
				return written, err
			}
			written = append(written, base+".geojson")
		default:
			return written, fmt.Errorf("unknown output format %s", format)
		}
	}

	log.Info().Str("view", view.Name).Int("stations", len(selected)).Strs("files", written).Msg("Written view")

	return written, nil
}
