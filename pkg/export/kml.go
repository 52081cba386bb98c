package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stationcoords/pkg/ctdf"
	"github.com/twpayne/go-kml"
)

func writeKML(writer io.Writer, rows []*stationRow) error {
	document := kml.Document()

	for _, row := range rows {
		location, ok := ctdf.ParseLocation(row.Lat, row.Lon)
		if !ok {
			log.Warn().
				Str("station", fmt.Sprintf("%s %s", row.Code, row.Name)).
				Str("lat", row.Lat).
				Str("lon", row.Lon).
				Msg("Skipping placemark without coordinates")
			continue
		}

		document.Add(kml.Placemark(
			kml.Name(fmt.Sprintf("%s %s", row.Code, row.Name)),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: location.Longitude, Lat: location.Latitude})),
		))
	}

	return kml.KML(document).WriteIndent(writer, "", "  ")
}

func WriteKML(writer io.Writer, stations []*ctdf.Station) error {
	return writeKML(writer, newStationRows(stations))
}

func WriteKMLFile(path string, stations []*ctdf.Station) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteKML(file, stations); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// KMLPath is path with the .csv extension swapped for .kml
func KMLPath(csvPath string) string {
	return strings.TrimSuffix(csvPath, ".csv") + ".kml"
}

// KMLFromCSV renders a station CSV as a KML file next to it, returning the KML path
func KMLFromCSV(csvPath string) (string, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	rows, err := readStationRows(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", csvPath, err)
	}

	kmlPath := KMLPath(csvPath)

	kmlFile, err := os.Create(kmlPath)
	if err != nil {
		return "", err
	}

	if err := writeKML(kmlFile, rows); err != nil {
		kmlFile.Close()
		return "", err
	}

	if err := kmlFile.Close(); err != nil {
		return "", err
	}

	log.Info().Str("csv", csvPath).Str("kml", kmlPath).Int("rows", len(rows)).Msg("Written KML")

	return kmlPath, nil
}
