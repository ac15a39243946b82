package potd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
)

const titleSeparator = ". "

// Record is the problem of the day as shown in the problem-set table.
// SolutionURL is nil when no solution is published.
type Record struct {
	Number      uint32
	Name        string
	URL         string
	SolutionURL *string
}

// ParseTitle splits "<number>. <name>" on the first separator.
func ParseTitle(title string) (uint32, string, error) {
	rawNumber, name, ok := strings.Cut(title, titleSeparator)
	if !ok {
		return 0, "", fmt.Errorf("%w: title %q lacks %q", scrapeerr.ErrFormatMismatch, title, titleSeparator)
	}

	number, err := strconv.ParseUint(rawNumber, 10, 32)
	if err != nil {
		return 0, "", fmt.Errorf("%w: problem number %q: %v", scrapeerr.ErrFormatMismatch, rawNumber, err)
	}
	if name == "" {
		return 0, "", fmt.Errorf("%w: title %q has an empty name", scrapeerr.ErrFormatMismatch, title)
	}

	return uint32(number), name, nil
}
