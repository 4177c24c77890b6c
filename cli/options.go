package cli

import "fmt"

// Mode selects the algorithm of a run.
type Mode string

const (
	ModeMST     Mode = "MST"
	ModeFastTSP Mode = "FASTTSP"
	ModeOptTSP  Mode = "OPTTSP"
)

// ParseMode converts a --mode value. Matching is exact and case-sensitive.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeMST, ModeFastTSP, ModeOptTSP:
		return m, nil
	case "":
		return "", ErrNoMode
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Options is the parsed command line.
type Options struct {
	Mode    Mode
	Verbose bool
}

// usageText is printed by --help.
const usageText = `roomgraph reads room coordinates from standard input and runs one graph
algorithm over them: a minimum spanning tree, a fast travelling-salesperson
tour, or an optimal travelling-salesperson tour.

Usage:
  roomgraph [--help | -h]
  roomgraph [--mode | -m <MST | FASTTSP | OPTTSP>] [--verbose | -v] < rooms.txt

Input:
  the number of rooms, then one "x y" integer pair per room

Flags:
  -m, --mode string   algorithm: MST, FASTTSP or OPTTSP (required)
  -v, --verbose       log timings and host details to standard error
  -h, --help          print this text and exit
`
