package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

func defaultHistoryFile() string {
	return filepath.Join(os.TempDir(), "advent_history.txt")
}

// inputPath picks the input file: the positional argument first, then the
// config file's input key. An empty result (or "-") means stdin.
func (opts *options) inputPath(args []string) string {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		path = opts.input
	}
	if path == "-" {
		return ""
	}
	return path
}

func (opts *options) readInput(path string) (string, error) {
	var s string
	switch {
	case opts.interactive:
		var err error
		s, err = readInteractive(opts.history)
		if err != nil {
			return "", err
		}
	case path == "":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %s", err)
		}
		s = string(b)
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		s = string(b)
	}
	return trimInput(s), nil
}

// trimInput drops the line terminators at the very end of the input.
// Files nearly always end in a newline, which would otherwise parse as an
// empty final row.
func trimInput(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// readInteractive prompts for rows until a blank line (after at least one
// row) or EOF.
func readInteractive(history string) (string, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: history,
	})
	if err != nil {
		return "", err
	}
	defer l.Close()

	var rows []string
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			return "", err
		case io.EOF:
			return strings.Join(rows, "\n"), nil
		default:
			return "", fmt.Errorf("readline error: %s", err)
		}
		if line == "" {
			if len(rows) > 0 {
				return strings.Join(rows, "\n"), nil
			}
			continue
		}
		rows = append(rows, line)
	}
}
