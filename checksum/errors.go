package checksum

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRow is returned when a row has no values, so its minimum and
	// maximum are undefined.
	ErrEmptyRow = errors.New("checksum: empty row")

	// ErrNoDivisiblePair is returned when no two values in a row divide one
	// another.
	ErrNoDivisiblePair = errors.New("checksum: no evenly divisible pair")

	// ErrOverflow is returned when a row result or a running sum does not
	// fit in an int64.
	ErrOverflow = errors.New("checksum: int64 overflow")
)

// A ParseError reports a token that is not a base-10 integer.
type ParseError struct {
	Row   int // 0-based
	Field int // 0-based
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("checksum: line %d, field %d: cannot parse %q as an integer: %s",
		e.Row+1, e.Field+1, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// A RowError ties a row-level failure (ErrEmptyRow, ErrNoDivisiblePair) to
// the row that caused it.
type RowError struct {
	Row int // 0-based
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Row+1, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
