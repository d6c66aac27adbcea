package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExhausted signals that the backtracking scheduler ran out of combinations (or
// out of its node budget) without finding a complete assignment. It is recoverable:
// RunScheduler resets and falls back to the greedy scheduler on it.
var ErrExhausted = errors.New("no complete assignment found")

// UnsatisfiableError is raised by the domain builder when a section has no qualified
// teacher or no compatible room at all. Scheduling cannot proceed for such an input.
type UnsatisfiableError struct {
	SectionId string
	Resource  string // "teacher" or "room"
}

func (err UnsatisfiableError) Error() string {
	return fmt.Sprintf("section \"%v\" has no feasible %v", err.SectionId, err.Resource)
}

type ConflictKind int

const (
	DuplicateSection ConflictKind = iota
	TeacherDoubleBooked
	RoomDoubleBooked
)

// ConflictError reports a double-booking found by Check. Sections holds every
// section id involved in the collision.
type ConflictError struct {
	Kind     ConflictKind
	PeriodId string
	Resource string // teacher or room name; the section id itself for DuplicateSection
	Sections []string
}

func (err ConflictError) Error() string {
	colliding := strings.Join(err.Sections, ", ")
	switch err.Kind {
	case DuplicateSection:
		return fmt.Sprintf("conflict in %v: section \"%v\" is scheduled twice in the same period", err.PeriodId, err.Resource)
	case TeacherDoubleBooked:
		return fmt.Sprintf("conflict in %v: teacher \"%v\" is assigned to multiple sections simultaneously: %v", err.PeriodId, err.Resource, colliding)
	default:
		return fmt.Sprintf("conflict in %v: classroom \"%v\" is assigned to multiple sections simultaneously: %v", err.PeriodId, err.Resource, colliding)
	}
}
