package formats

import (
	"io"

	"github.com/travigo/stationcoords/pkg/ctdf"
)

type Format interface {
	ParseFile(io.Reader) error
}

// StationListFormat is a parsed station catalogue
type StationListFormat interface {
	Format
	Stations() []ctdf.StationKey
}
