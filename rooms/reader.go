package rooms

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// maxPrealloc bounds the capacity reserved from the declared count; larger
// inputs grow by append as their pairs arrive.
const maxPrealloc = 1 << 16

// Read parses a room count followed by that many coordinate pairs from r.
// Tokens may be separated by any mix of spaces and newlines; anything after
// the last pair is ignored.
//
// When classify is true every room gets its zone and the returned census
// reflects the input; otherwise zones stay Unclassified and the census is empty.
//
// Errors:
//   - ErrMalformedInput (wrapped with the offending position) on a short or
//     non-numeric stream.
//   - ErrNegativeCount when the count is below zero.
//   - any read error of r.
func Read(r io.Reader, classify bool) ([]Room, Census, error) {
	var (
		sc  = bufio.NewScanner(r)
		c   Census
		n   int
		err error
	)
	sc.Split(bufio.ScanWords)

	if n, err = nextInt(sc, "room count"); err != nil {
		return nil, c, err
	}
	if n < 0 {
		return nil, c, ErrNegativeCount
	}

	rs := make([]Room, 0, min(n, maxPrealloc))
	var x, y int
	for i := 0; i < n; i++ {
		if x, err = nextInt(sc, fmt.Sprintf("x of room %d", i)); err != nil {
			return nil, c, err
		}
		if y, err = nextInt(sc, fmt.Sprintf("y of room %d", i)); err != nil {
			return nil, c, err
		}
		rs = append(rs, Room{X: x, Y: y})
	}
	if classify {
		c = Assign(rs)
	}

	return rs, c, nil
}

// nextInt scans one token and converts it; what names the token in errors.
func nextInt(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", what, err)
		}

		return 0, fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s is %q", ErrMalformedInput, what, sc.Text())
	}

	return v, nil
}
