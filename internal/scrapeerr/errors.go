package scrapeerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for malformed CLI arguments or references
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransport covers network and browser session failures, including timeouts
	ErrTransport = errors.New("transport error")

	// ErrStructureMismatch means an expected element or attribute is absent
	ErrStructureMismatch = errors.New("page structure mismatch")

	// ErrFormatMismatch means extracted text does not have the expected shape
	ErrFormatMismatch = errors.New("format mismatch")

	ErrSerialization = errors.New("serialization error")

	ErrIO            = errors.New("io error")
)

var (
	ErrTimeout              = fmt.Errorf("%w: timed out", ErrTransport)
	ErrElementNotFound      = fmt.Errorf("%w: element not found", ErrStructureMismatch)
	ErrMissingAttribute     = fmt.Errorf("%w: missing attribute", ErrStructureMismatch)
	ErrMissingContentRegion = fmt.Errorf("%w: missing content region", ErrStructureMismatch)
)
