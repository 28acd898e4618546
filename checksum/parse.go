package checksum

import (
	"strconv"
	"strings"
)

// A Row is one line of the matrix in its original left-to-right order.
type Row []int64

// A Matrix is the parsed input, one Row per line.
type Matrix []Row

// Parse normalizes raw and parses the result with ParseMatrix.
func Parse(raw string) (Matrix, error) {
	return ParseMatrix(Normalize(raw))
}

// ParseMatrix splits normalized text into rows on newlines and each row into
// values on single spaces. Empty rows and empty fields (from doubled spaces)
// are not skipped; they fail to parse like any other bad token.
func ParseMatrix(normalized string) (Matrix, error) {
	lines := strings.Split(normalized, newline)
	mat := make(Matrix, len(lines))
	for i, line := range lines {
		row, err := parseRow(i, line)
		if err != nil {
			return nil, err
		}
		mat[i] = row
	}
	return mat, nil
}

func parseRow(i int, line string) (Row, error) {
	fields := strings.Split(line, space)
	row := make(Row, len(fields))
	for j, field := range fields {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, &ParseError{Row: i, Field: j, Token: field, Err: err}
		}
		row[j] = n
	}
	return row, nil
}
