package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

type report struct {
	Solution string `yaml:"solution"`
	Rows     int    `yaml:"rows"`
	Part1    *int64 `yaml:"part1,omitempty"`
	Part2    *int64 `yaml:"part2,omitempty"`
}

func checkFormat(format string) error {
	switch format {
	case "text", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func (r *report) write(w io.Writer, format string, comma bool) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	num := func(n int64) string {
		if comma {
			return humanize.Comma(n)
		}
		return strconv.FormatInt(n, 10)
	}
	var err error
	switch {
	case r.Part1 != nil && r.Part2 != nil:
		_, err = fmt.Fprintf(w, "part1: %s\npart2: %s\n", num(*r.Part1), num(*r.Part2))
	case r.Part1 != nil:
		_, err = fmt.Fprintln(w, num(*r.Part1))
	case r.Part2 != nil:
		_, err = fmt.Fprintln(w, num(*r.Part2))
	}
	return err
}
