package potd

import (
	"testing"

	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTitle(t *testing.T) {
	tests := []struct {
		title      string
		wantNumber uint32
		wantName   string
	}{
		{"2071. Maximum Number of Tasks You Can Assign", 2071, "Maximum Number of Tasks You Can Assign"},
		{"0. Zero", 0, "Zero"},
		{"1. Two Sum", 1, "Two Sum"},
		{"42. Trapping Rain Water. Again", 42, "Trapping Rain Water. Again"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			number, name, err := ParseTitle(tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumber, number)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestParseTitle_FormatMismatch(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"no separator", "2071 Maximum Number of Tasks"},
		{"dot without space", "2071.Maximum"},
		{"negative number", "-1. Negative"},
		{"not a number", "abc. Name"},
		{"empty number", ". Name"},
		{"overflows uint32", "4294967296. Too Big"},
		{"empty", ""},
		{"empty name", "7. "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseTitle(tt.title)
			assert.ErrorIs(t, err, scrapeerr.ErrFormatMismatch)
		})
	}
}
