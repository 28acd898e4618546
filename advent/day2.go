package main

import (
	"os"

	"github.com/cespare/wait"
	"github.com/kr/pretty"

	"github.com/DnLKnR/AdventOfCode2017/checksum"
)

func init() {
	register("2", day2)
	register("2a", day2a)
	register("2b", day2b)
}

func day2a(opts *options, input string) (*report, error) {
	mat, err := parseMatrix(opts, input)
	if err != nil {
		return nil, err
	}
	sum, err := checksum.Spread(mat)
	if err != nil {
		return nil, err
	}
	return &report{Rows: len(mat), Part1: &sum}, nil
}

func day2b(opts *options, input string) (*report, error) {
	mat, err := parseMatrix(opts, input)
	if err != nil {
		return nil, err
	}
	sum, err := checksum.Division(mat)
	if err != nil {
		return nil, err
	}
	return &report{Rows: len(mat), Part2: &sum}, nil
}

// day2 computes both checksums side by side over one parsed matrix.
func day2(opts *options, input string) (*report, error) {
	mat, err := parseMatrix(opts, input)
	if err != nil {
		return nil, err
	}
	var part1, part2 int64
	var wg wait.Group
	wg.Go(func(_ <-chan struct{}) error {
		var err error
		part1, err = checksum.Spread(mat)
		return err
	})
	wg.Go(func(_ <-chan struct{}) error {
		var err error
		part2, err = checksum.Division(mat)
		return err
	})
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return &report{Rows: len(mat), Part1: &part1, Part2: &part2}, nil
}

func parseMatrix(opts *options, input string) (checksum.Matrix, error) {
	mat, err := checksum.Parse(input)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		pretty.Fprintf(os.Stderr, "%# v\n", mat)
	}
	return mat, nil
}
