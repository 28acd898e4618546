package checksum

import "math"

// Spread returns the difference between the largest and smallest value in r.
func (r Row) Spread() (int64, error) {
	if len(r) == 0 {
		return 0, ErrEmptyRow
	}
	min, max := r[0], r[0]
	for _, n := range r[1:] {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	d := max - min
	if d < 0 {
		return 0, ErrOverflow
	}
	return d, nil
}

// Spread sums Row.Spread over every row of m.
func Spread(m Matrix) (int64, error) {
	var sum int64
	for i, row := range m {
		d, err := row.Spread()
		if err != nil {
			return 0, &RowError{Row: i, Err: err}
		}
		var ok bool
		if sum, ok = add(sum, d); !ok {
			return 0, &RowError{Row: i, Err: ErrOverflow}
		}
	}
	return sum, nil
}

// SpreadChecksum parses input and returns Spread of the result.
func SpreadChecksum(input string) (int64, error) {
	mat, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Spread(mat)
}

// add returns a+b and whether the sum fits in an int64.
func add(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}
