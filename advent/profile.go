package main

import (
	"os"

	"github.com/felixge/fgprof"
)

// startProfile begins a wall-clock (on- and off-CPU) profile in pprof format.
// The returned func stops it and closes the file.
func startProfile(path string) (stop func() error, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
