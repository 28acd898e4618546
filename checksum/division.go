package checksum

import (
	"iter"
	"math"
)

// Pairs yields (r[i], r[j]) for every i < j, in order of i and then j.
// Nothing is materialized; stopping the range loop stops the generation.
func Pairs(r Row) iter.Seq2[int64, int64] {
	return func(yield func(int64, int64) bool) {
		for i := 0; i < len(r); i++ {
			for j := i + 1; j < len(r); j++ {
				if !yield(r[i], r[j]) {
					return
				}
			}
		}
	}
}

// quotient reports the exact quotient of a and b if one divides the other.
// a/b is tried before b/a. A pair containing zero never qualifies.
// MinInt64 divided by -1 qualifies but yields ErrOverflow.
func quotient(a, b int64) (int64, bool, error) {
	if a == 0 || b == 0 {
		return 0, false, nil
	}
	if a%b == 0 {
		q, err := div(a, b)
		return q, true, err
	}
	if b%a == 0 {
		q, err := div(b, a)
		return q, true, err
	}
	return 0, false, nil
}

func div(n, d int64) (int64, error) {
	if n == math.MinInt64 && d == -1 {
		return 0, ErrOverflow
	}
	return n / d, nil
}

// Quotient finds the first pair produced by Pairs in which one value evenly
// divides the other and returns the result of that division. Equal values
// give 1. If no pair qualifies, Quotient returns ErrNoDivisiblePair.
// A quotient that does not fit in an int64 is ErrOverflow.
func (r Row) Quotient() (int64, error) {
	for a, b := range Pairs(r) {
		if q, ok, err := quotient(a, b); ok {
			return q, err
		}
	}
	return 0, ErrNoDivisiblePair
}

// Division sums Row.Quotient over every row of m.
func Division(m Matrix) (int64, error) {
	var sum int64
	for i, row := range m {
		q, err := row.Quotient()
		if err != nil {
			return 0, &RowError{Row: i, Err: err}
		}
		var ok bool
		if sum, ok = add(sum, q); !ok {
			return 0, &RowError{Row: i, Err: ErrOverflow}
		}
	}
	return sum, nil
}

// DivisionChecksum parses input and returns Division of the result.
func DivisionChecksum(input string) (int64, error) {
	mat, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Division(mat)
}
