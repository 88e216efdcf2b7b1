// Package records reads and writes the node records consumed by core.Build.
package records

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is returned when an input line or document entry
	// cannot be read as a node record.
	ErrMalformedRecord = errors.New("records: malformed record")

	// ErrUnknownFormat is returned for an unsupported Format.
	ErrUnknownFormat = errors.New("records: unknown format")
)

// ParseError locates a malformed record. Line is 1-based.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("records: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Is reports ErrMalformedRecord.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedRecord }
