package geocoder

import (
	"context"

	"github.com/travigo/stationcoords/pkg/ctdf"
)

type Status int

const (
	StatusNotFound Status = iota
	StatusFound
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusFailed:
		return "failed"
	default:
		return "not-found"
	}
}

// Result of a single lookup. A failed lookup carries the error instead of returning it.
type Result struct {
	Status   Status
	Location ctdf.Location
	Err      error
}

func Found(location ctdf.Location) Result {
	return Result{Status: StatusFound, Location: location}
}

func NotFound() Result {
	return Result{Status: StatusNotFound}
}

func Failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}

type Resolver interface {
	// Name is the provenance tag recorded against resolved stations
	Name() string
	Resolve(ctx context.Context, query string) Result
}
