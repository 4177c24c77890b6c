package cli

import (
	"errors"

	"github.com/katalvlaran/roomgraph/mst"
)

// Usage errors; each maps to one fixed diagnostic line.
var (
	// ErrNoMode is returned when --mode is absent or has no value.
	ErrNoMode = errors.New("cli: no mode specified")

	// ErrInvalidMode is returned for a --mode value other than MST, FASTTSP, OPTTSP.
	ErrInvalidMode = errors.New("cli: invalid mode")

	// ErrInvalidOption is returned for unknown flags and stray arguments.
	ErrInvalidOption = errors.New("cli: invalid command line option")
)

// diagnostic renders err as the line printed on standard error.
func diagnostic(err error) string {
	switch {
	case errors.Is(err, ErrNoMode):
		return "Error: No mode specified"
	case errors.Is(err, ErrInvalidMode):
		return "Error: Invalid mode"
	case errors.Is(err, ErrInvalidOption):
		return "Error: Invalid command line option"
	case errors.Is(err, mst.ErrCannotConstruct):
		return "Cannot construct MST"
	default:
		return "Error: " + err.Error()
	}
}
