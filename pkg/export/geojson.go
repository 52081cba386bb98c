package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/liip/sheriff"
	"github.com/paulmach/orb/geojson"
	"github.com/travigo/stationcoords/pkg/ctdf"
)

// WriteGeoJSON writes the located stations as a FeatureCollection of points
func WriteGeoJSON(writer io.Writer, stations []*ctdf.Station) error {
	collection := geojson.NewFeatureCollection()

	for _, station := range stations {
		location, ok := station.Location()
		if !ok {
			continue
		}

		properties, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic", "detailed"},
		}, station)
		if err != nil {
			return err
		}

		feature := geojson.NewFeature(location.Point())
		if propertiesMap, ok := properties.(map[string]interface{}); ok {
			feature.Properties = geojson.Properties(propertiesMap)
		}

		collection.Append(feature)
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(collection)
}

func WriteGeoJSONFile(path string, stations []*ctdf.Station) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteGeoJSON(file, stations); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
