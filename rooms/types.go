package rooms

import (
	"errors"

	"github.com/yourbasic/bit"
)

// ErrMalformedInput is returned when the input stream ends early or holds a
// token that is not a base-10 integer.
var ErrMalformedInput = errors.New("rooms: malformed input")

// ErrNegativeCount is returned when the leading room count is negative.
var ErrNegativeCount = errors.New("rooms: negative room count")

// Zone is the partition label of a room. The zero value means the room was
// never classified (TSP modes skip classification).
type Zone uint8

const (
	Unclassified Zone = iota
	Lab
	Outer
	Decontamination
)

// String implements fmt.Stringer.
func (z Zone) String() string {
	switch z {
	case Lab:
		return "lab"
	case Outer:
		return "outer"
	case Decontamination:
		return "decontamination"
	default:
		return "unclassified"
	}
}

// Room is a point of the input. Index in the enclosing slice is its identity.
type Room struct {
	X, Y int
	Zone Zone
}

// Census records which zones have been observed at least once.
// The zero value is an empty census ready for use.
type Census struct {
	seen bit.Set
}

// Observe marks z as present. Unclassified rooms are ignored.
func (c *Census) Observe(z Zone) {
	if z == Unclassified {
		return
	}
	c.seen.Add(int(z))
}

// Has reports whether at least one room of zone z was observed.
func (c Census) Has(z Zone) bool {
	return c.seen.Contains(int(z))
}

// Connectable reports whether a spanning tree can exist under the zone rule.
// Lab and Outer rooms can only meet through Decontamination, so the partition
// is infeasible exactly when both are populated and Decontamination is empty.
func (c Census) Connectable() bool {
	return !(c.Has(Lab) && c.Has(Outer) && !c.Has(Decontamination))
}
