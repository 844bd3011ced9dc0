package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/freqassign/interference"
)

// ErrInvalidAssignment is returned by Check (and by every solver entry point
// that relies on it) when an assignment has the wrong length or an
// out-of-range value.
var ErrInvalidAssignment = errors.New("verify: invalid assignment")

// Kind tags an Issue.
type Kind uint8

const (
	// LengthMismatch: len(assignment) ≠ n. Node, I and J are unused.
	LengthMismatch Kind = iota + 1

	// RangeError: assignment[Node] ∉ [0, k).
	RangeError

	// Conflict: I < J are adjacent and share a frequency.
	Conflict
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case LengthMismatch:
		return "length"
	case RangeError:
		return "range"
	case Conflict:
		return "conflict"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Issue is one finding of the verifier. Exactly the fields relevant to Kind
// are meaningful.
type Issue struct {
	Kind Kind
	Node int // RangeError
	I, J int // Conflict, I < J
}

// String renders the issue for logs and reports.
func (is Issue) String() string {
	switch is.Kind {
	case LengthMismatch:
		return "length mismatch"
	case RangeError:
		return fmt.Sprintf("range error at node %d", is.Node)
	case Conflict:
		return fmt.Sprintf("conflict (%d, %d)", is.I, is.J)
	default:
		return is.Kind.String()
	}
}

// Structural reports whether the issue makes the assignment unusable as a
// search input (length or range).
func (is Issue) Structural() bool { return is.Kind == LengthMismatch || is.Kind == RangeError }

// Report is the verifier's verdict.
type Report struct {
	Valid  bool
	Cost   float64
	Issues []Issue
}

// Conflicts returns the conflicting pairs in report order.
func (r Report) Conflicts() []interference.Edge {
	var out []interference.Edge
	for _, is := range r.Issues {
		if is.Kind == Conflict {
			out = append(out, interference.Edge{I: is.I, J: is.J})
		}
	}

	return out
}

// ConflictCount returns the number of Conflict issues.
func (r Report) ConflictCount() int {
	c := 0
	for _, is := range r.Issues {
		if is.Kind == Conflict {
			c++
		}
	}

	return c
}

// RangeErrors returns the nodes holding an out-of-range frequency.
func (r Report) RangeErrors() []int {
	var out []int
	for _, is := range r.Issues {
		if is.Kind == RangeError {
			out = append(out, is.Node)
		}
	}

	return out
}

// FirstStructural returns the first length or range issue, if any.
func (r Report) FirstStructural() (Issue, bool) {
	for _, is := range r.Issues {
		if is.Structural() {
			return is, true
		}
	}

	return Issue{}, false
}

// Options tunes VerifyWith.
type Options struct {
	// FastFail stops the scan at the first issue.
	FastFail bool
}
