package stationcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code     string
		expected Components
	}{
		{"NS3", Components{LineCode: "NS", Number: 3, Suffix: "", Valid: true}},
		{"NS3A", Components{LineCode: "NS", Number: 3, Suffix: "A", Valid: true}},
		{"CC29", Components{LineCode: "CC", Number: 29, Suffix: "", Valid: true}},
		{"BP14", Components{LineCode: "BP", Number: 14, Suffix: "", Valid: true}},
		{"TE22A", Components{LineCode: "TE", Number: 22, Suffix: "A", Valid: true}},
		{"STC", Components{LineCode: "STC", Number: 0, Suffix: ""}},
		{"invalid", Components{LineCode: "invalid", Number: 0, Suffix: ""}},
		{"", Components{LineCode: "", Number: 0, Suffix: ""}},
		{"ns3", Components{LineCode: "ns3", Number: 0, Suffix: ""}},
		{"3NS", Components{LineCode: "3NS", Number: 0, Suffix: ""}},
		{"NS99999999999999999999", Components{LineCode: "NS99999999999999999999", Number: 0, Suffix: ""}},

		// Only the start of the code has to match
		{"NE1-X", Components{LineCode: "NE", Number: 1, Suffix: "", Valid: true}},
		{"CE007", Components{LineCode: "CE", Number: 7, Suffix: "", Valid: true}},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.expected, Parse(tc.code))
		})
	}
}

func TestCompareSequentialOrder(t *testing.T) {
	assert.Negative(t, CompareCodes("NS3", "NS3A"))
	assert.Negative(t, CompareCodes("NS3A", "NS4"))
	assert.Negative(t, CompareCodes("NS3", "NS4"))
	assert.Negative(t, CompareCodes("NS9", "NS10"))
	assert.Zero(t, CompareCodes("NS03", "NS3"))
	assert.Positive(t, CompareCodes("NS10", "NS9"))

	assert.True(t, Less("CC1", "NS1"))
	assert.False(t, Less("NS1", "NS1"))
}

func TestCompareFallback(t *testing.T) {
	// Fallback keys compare lexicographically on the whole code
	assert.Negative(t, CompareCodes("STC", "STx"))
	assert.Negative(t, CompareCodes("abc", "abd"))
	assert.Equal(t, Components{LineCode: "invalid"}, Parse("invalid"))

	// and against valid codes by line code first
	assert.Negative(t, CompareCodes("CC1", "invalid"))
	assert.Negative(t, CompareCodes("NS", "NS1"))
}

func TestSort(t *testing.T) {
	codes := []string{"NS4", "NS3A", "NS3", "CC1"}
	Sort(codes)
	assert.Equal(t, []string{"CC1", "NS3", "NS3A", "NS4"}, codes)

	codes = []string{"NS10", "EW2", "NS2", "NS1", "EW10", "EW1", "DT35", "CG1", "CG"}
	Sort(codes)
	assert.Equal(t, []string{"CG", "CG1", "DT35", "EW1", "EW2", "EW10", "NS1", "NS2", "NS10"}, codes)
}

func TestComponentsString(t *testing.T) {
	assert.Equal(t, "NS3A", Parse("NS3A").String())
	assert.Equal(t, "NS3", Parse("NS03").String())
	assert.Equal(t, "invalid", Parse("invalid").String())
}
