package stationcode

import (
	"cmp"
	"regexp"
	"strconv"

	"golang.org/x/exp/slices"
)

// Station codes look like NS3, NS3A or CC29
var codeMatcher = regexp.MustCompile(`^([A-Z]+)([0-9]+)([A-Z]*)`)

// Components is the sort key of a station code.
// Codes that don't look like a station code keep the whole code as the LineCode with
// Number 0 and an empty Suffix, and have Valid set to false.
type Components struct {
	LineCode string
	Number   int
	Suffix   string

	Valid bool
}

func Parse(code string) Components {
	fallback := Components{
		LineCode: code,
		Number:   0,
		Suffix:   "",
	}

	match := codeMatcher.FindStringSubmatch(code)
	if match == nil {
		return fallback
	}

	number, err := strconv.Atoi(match[2])
	if err != nil {
		// Only happens when the digits overflow an int. No real line numbers
		// get near that, so such a code sorts with the malformed ones.
		return fallback
	}

	return Components{
		LineCode: match[1],
		Number:   number,
		Suffix:   match[3],
		Valid:    true,
	}
}

func (c Components) String() string {
	if !c.Valid {
		return c.LineCode
	}

	return c.LineCode + strconv.Itoa(c.Number) + c.Suffix
}

// Compare orders by line code, then numerically by station number, then by suffix.
// An empty suffix sorts before any other so NS3 < NS3A < NS4.
func Compare(a Components, b Components) int {
	if c := cmp.Compare(a.LineCode, b.LineCode); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Number, b.Number); c != 0 {
		return c
	}

	return cmp.Compare(a.Suffix, b.Suffix)
}

func CompareCodes(a string, b string) int {
	return Compare(Parse(a), Parse(b))
}

func Less(a string, b string) bool {
	return CompareCodes(a, b) < 0
}

// Sort puts the codes into sequential station order, keeping the relative order of equal keys
func Sort(codes []string) {
	slices.SortStableFunc(codes, CompareCodes)
}
