package manager

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stationcoords/pkg/ctdf"
	"github.com/travigo/stationcoords/pkg/dataimporter/datasets"
	"github.com/travigo/stationcoords/pkg/dataimporter/formats"
	"github.com/travigo/stationcoords/pkg/dataimporter/formats/spreadsheet"
	"github.com/travigo/stationcoords/pkg/stationcode"
	"github.com/travigo/stationcoords/pkg/util"
	"golang.org/x/exp/slices"
)

const DefaultDownloadTimeout = 30 * time.Second

var (
	ErrDatasetNotFound   = errors.New("dataset could not be found")
	ErrUnexpectedBundle  = errors.New("bundle must contain exactly one data file")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// ImportDataset downloads & parses a station catalogue, returning each (code, name) pair once in station code order.
// Nothing is retried, any failure is returned.
func ImportDataset(ctx context.Context, dataset *datasets.DataSet) ([]ctdf.StationKey, error) {
	log.Info().Str("id", dataset.Identifier).Str("source", dataset.Source).Msg("Importing dataset")

	format, err := newStationListFormat(dataset.Format)
	if err != nil {
		return nil, err
	}

	timeout := DefaultDownloadTimeout
	if dataset.Timeout != "" {
		timeout, err = util.ParseISO8601Duration(dataset.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout for dataset %s: %w", dataset.Identifier, err)
		}
	}

	var body []byte
	if isValidUrl(dataset.Source) {
		body, err = downloadFile(ctx, dataset.Source, timeout)
	} else {
		body, err = os.ReadFile(dataset.Source)
	}
	if err != nil {
		return nil, err
	}

	dataFile, err := unpackBundle(body, dataset.UnpackBundle)
	if err != nil {
		return nil, err
	}

	if err := format.ParseFile(dataFile); err != nil {
		return nil, fmt.Errorf("failed to parse %s dataset: %w", dataset.Format, err)
	}

	stations := uniqueStations(format.Stations())

	log.Info().Str("id", dataset.Identifier).Int("stations", len(stations)).Msg("Imported dataset")

	return stations, nil
}

func newStationListFormat(format datasets.DataSetFormat) (formats.StationListFormat, error) {
	switch format {
	case datasets.DataSetFormatXLS:
		return &spreadsheet.XLS{}, nil
	case datasets.DataSetFormatXLSX:
		return &spreadsheet.XLSX{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func uniqueStations(stations []ctdf.StationKey) []ctdf.StationKey {
	seen := map[ctdf.StationKey]bool{}
	var unique []ctdf.StationKey

	for _, station := range stations {
		if seen[station] {
			continue
		}

		seen[station] = true
		unique = append(unique, station)
	}

	slices.SortFunc(unique, func(a ctdf.StationKey, b ctdf.StationKey) int {
		if c := stationcode.CompareCodes(a.Code, b.Code); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	return unique
}

func unpackBundle(body []byte, bundleFormat datasets.BundleFormat) (io.Reader, error) {
	switch bundleFormat {
	case datasets.BundleFormatNone, "":
		return bytes.NewReader(body), nil
	case datasets.BundleFormatZIP:
		archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
		if err != nil {
			return nil, fmt.Errorf("failed to open zip bundle: %w", err)
		}

		var dataFiles []*zip.File
		for _, zipFile := range archive.File {
			if zipFile.FileInfo().IsDir() {
				continue
			}

			dataFiles = append(dataFiles, zipFile)
		}

		if len(dataFiles) != 1 {
			return nil, fmt.Errorf("%w, found %d", ErrUnexpectedBundle, len(dataFiles))
		}

		log.Debug().Str("file", dataFiles[0].Name).Msg("Unpacked bundle")

		file, err := dataFiles[0].Open()
		if err != nil {
			return nil, err
		}
		defer file.Close()

		contents, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}

		return bytes.NewReader(contents), nil
	default:
		return nil, fmt.Errorf("cannot handle bundle type %s", bundleFormat)
	}
}

func isValidUrl(toTest string) bool {
	_, err := url.ParseRequestURI(toTest)
	if err != nil {
		return false
	}

	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

func downloadFile(ctx context.Context, source string, timeout time.Duration) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "stationcoords")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to download %s: status code %d", source, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
