package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/katalvlaran/roomgraph/mst"
	"github.com/katalvlaran/roomgraph/rooms"
	"github.com/katalvlaran/roomgraph/tsp"
)

// runner executes one parsed command line.
type runner struct {
	opts Options
	in   io.Reader
	out  io.Writer
	log  *log.Logger
}

func newRunner(opts Options, in io.Reader, out, errOut io.Writer) *runner {
	logOut := io.Discard
	if opts.Verbose {
		logOut = errOut
	}

	return &runner{
		opts: opts,
		in:   in,
		out:  out,
		log:  log.New(logOut, "INFO ", log.Ltime|log.Lmicroseconds),
	}
}

// run reads the rooms, solves, and prints the result. Output is written only
// after the algorithm succeeded, so a failed run leaves stdout empty.
func (r *runner) run() error {
	if r.opts.Verbose {
		r.log.Printf("host: %s", hostReport())
	}

	start := time.Now()
	rs, _, err := rooms.Read(r.in, r.opts.Mode == ModeMST)
	if err != nil {
		return fmt.Errorf("reading rooms: %w", err)
	}
	r.log.Printf("read %d rooms in %s", len(rs), time.Since(start))

	start = time.Now()
	bw := bufio.NewWriter(r.out)
	switch r.opts.Mode {
	case ModeMST:
		tree, err := mst.Build(rs)
		if err != nil {
			return err
		}
		r.log.Printf("mode=%s total=%.2f in %s", r.opts.Mode, tree.Total(), time.Since(start))
		writeTree(bw, tree)

	case ModeFastTSP:
		res := tsp.Fast(rs)
		r.log.Printf("mode=%s total=%.2f in %s", r.opts.Mode, res.Cost, time.Since(start))
		writeTour(bw, res)

	case ModeOptTSP:
		res, err := tsp.Optimal(rs)
		if err != nil {
			return err
		}
		r.log.Printf("mode=%s total=%.2f in %s", r.opts.Mode, res.Cost, time.Since(start))
		writeTour(bw, res)

	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, r.opts.Mode)
	}

	return bw.Flush()
}
