package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

const configSection = "advent"

// loadConfig fills in opts from the INI config file. Flags named in set were
// given explicitly and keep their values.
func (opts *options) loadConfig(set map[string]bool) error {
	path := opts.config
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(dir, "advent", "advent.ini")
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		return fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return opts.applyConfig(file, filepath.Dir(path), set)
}

// applyConfig copies settings from file into opts. Relative input and
// history paths are taken relative to dir, the config file's directory.
func (opts *options) applyConfig(file ini.File, dir string, set map[string]bool) error {
	if v, ok := file.Get(configSection, "input"); ok {
		opts.input = configPath(dir, v)
	}
	if v, ok := file.Get(configSection, "history"); ok {
		opts.history = configPath(dir, v)
	}
	if v, ok := file.Get(configSection, "format"); ok && !set["format"] {
		opts.format = v
	}
	if v, ok := file.Get(configSection, "comma"); ok && !set["comma"] {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: bad value for comma: %q", v)
		}
		opts.comma = b
	}
	return nil
}

func configPath(dir, p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
