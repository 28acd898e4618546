// Package checksum computes the two spreadsheet checksums from Advent of
// Code 2017, day 2.
//
// Input is a matrix of integers, one row per line, with values separated by
// single spaces or tabs. SpreadChecksum sums the difference between each
// row's largest and smallest value. DivisionChecksum sums, for each row, the
// quotient of the first pair of values where one evenly divides the other.
//
// All functions are pure and safe for concurrent use.
package checksum
