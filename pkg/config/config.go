package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/travigo/stationcoords/pkg/geocoder"
	"github.com/travigo/stationcoords/pkg/util"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "STATIONCOORDS_"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Dataset string `yaml:"dataset" validate:"required"`
	// Extra directory of datasource yaml files, added to the built in ones
	DataSources string `yaml:"datasources"`

	FutureStations FutureStations `yaml:"future_stations"`

	OutputDir string   `yaml:"output_dir" validate:"required"`
	Outputs   []Output `yaml:"outputs" validate:"required,min=1,unique=Name,dive"`

	OneMap   OneMap   `yaml:"onemap"`
	Overpass Overpass `yaml:"overpass"`
}

type FutureStations struct {
	Path     string `yaml:"path" validate:"required"`
	Encoding string `yaml:"encoding" validate:"required"`
}

type Output struct {
	Name string `yaml:"name" validate:"required,excludesall=/\\"`
	// expr boolean expression, see export.StationEnv
	Filter  string   `yaml:"filter" validate:"required"`
	Formats []string `yaml:"formats" validate:"required,min=1,dive,oneof=csv kml geojson"`
}

type Resolver struct {
	Endpoint   string `yaml:"endpoint" validate:"required,url"`
	Timeout    string `yaml:"timeout" validate:"required,iso8601"`
	MaxRetries int    `yaml:"max_retries" validate:"gte=0"`
}

type OneMap struct {
	Resolver `yaml:",inline"`

	Suffixes []string `yaml:"suffixes" validate:"required,min=1,dive,required"`
}

type Overpass struct {
	Resolver `yaml:",inline"`

	Country string `yaml:"country" validate:"required,len=2,uppercase"`
}

// Default downloads the LTA station codes and writes all_stations & stations into the working directory
func Default() *Config {
	return &Config{
		Dataset: "sg-lta-train-station-codes",
		FutureStations: FutureStations{
			Path:     "future_stations.csv",
			Encoding: "utf-8",
		},
		OutputDir: ".",
		Outputs: []Output{
			{Name: "all_stations", Filter: "true", Formats: []string{"csv", "kml"}},
			{Name: "stations", Filter: "not Future", Formats: []string{"csv", "kml"}},
		},
		OneMap: OneMap{
			Resolver: Resolver{
				Endpoint:   geocoder.DefaultOneMapEndpoint,
				Timeout:    "PT15S",
				MaxRetries: geocoder.DefaultMaxRetries,
			},
			Suffixes: []string{"MRT", "LRT"},
		},
		Overpass: Overpass{
			Resolver: Resolver{
				Endpoint:   geocoder.DefaultOverpassEndpoint,
				Timeout:    "PT15S",
				MaxRetries: geocoder.DefaultMaxRetries,
			},
			Country: geocoder.DefaultOverpassCountry,
		},
	}
}

// Load builds the config from the defaults, then the yaml file at path (if any), then the environment
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		configYaml, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(configYaml, config); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}

		log.Debug().Str("path", path).Msg("Loaded config file")
	}

	if err := config.ApplyEnvironment(util.GetPrefixedEnvironmentVariables(EnvPrefix)); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnvironment overrides values from environment variables with the prefix already removed
func (c *Config) ApplyEnvironment(environment map[string]string) error {
	for key, value := range environment {
		switch key {
		case "DATASET":
			c.Dataset = value
		case "DATASOURCES":
			c.DataSources = value
		case "FUTURE_STATIONS":
			c.FutureStations.Path = value
		case "FUTURE_STATIONS_ENCODING":
			c.FutureStations.Encoding = value
		case "OUTPUT_DIR":
			c.OutputDir = value
		case "ONEMAP_ENDPOINT":
			c.OneMap.Endpoint = value
		case "ONEMAP_TIMEOUT":
			c.OneMap.Timeout = value
		case "ONEMAP_SUFFIXES":
			c.OneMap.Suffixes = strings.Split(value, ",")
		case "OVERPASS_ENDPOINT":
			c.Overpass.Endpoint = value
		case "OVERPASS_TIMEOUT":
			c.Overpass.Timeout = value
		case "OVERPASS_COUNTRY":
			c.Overpass.Country = value
		case "ONEMAP_MAX_RETRIES", "OVERPASS_MAX_RETRIES":
			retries, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%w: %s%s must be a number", ErrInvalidConfig, EnvPrefix, key)
			}

			if key == "ONEMAP_MAX_RETRIES" {
				c.OneMap.MaxRetries = retries
			} else {
				c.Overpass.MaxRetries = retries
			}
		}
	}

	return nil
}

func validateISO8601(fl validator.FieldLevel) bool {
	_, err := util.ParseISO8601Duration(fl.Field().String())
	return err == nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("iso8601", validateISO8601); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			e := validationErrors[0]
			return fmt.Errorf("%w: %s failed %s check (value %v)", ErrInvalidConfig, e.Namespace(), e.Tag(), e.Value())
		}

		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return nil
}

// ClientOptions converts the resolver settings for the geocoder package
func (r Resolver) ClientOptions() (geocoder.ClientOptions, error) {
	timeout, err := util.ParseISO8601Duration(r.Timeout)
	if err != nil {
		return geocoder.ClientOptions{}, fmt.Errorf("%w: timeout %s: %s", ErrInvalidConfig, r.Timeout, err)
	}

	return geocoder.ClientOptions{
		Timeout:       timeout,
		MaxRetries:    r.MaxRetries,
		RetryInterval: geocoder.DefaultRetryInterval,
	}, nil
}
