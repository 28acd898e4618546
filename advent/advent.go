package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
)

type options struct {
	config      string
	interactive bool
	watch       bool
	format      string
	comma       bool
	debug       bool
	fgprof      string

	// Only settable from the config file.
	input   string
	history string
}

func main() {
	log.SetFlags(0)
	opts := options{history: defaultHistoryFile()}
	flag.StringVar(&opts.config, "config", "", "INI config `file` (default: advent/advent.ini in the user config dir, if present)")
	flag.BoolVar(&opts.interactive, "i", false, "Read the input interactively, one row per line, until a blank line or EOF")
	flag.BoolVar(&opts.watch, "watch", false, "Recompute whenever the input file changes")
	flag.StringVar(&opts.format, "format", "text", "Output format (text or yaml)")
	flag.BoolVar(&opts.comma, "comma", false, "Print numbers with thousands separators")
	flag.BoolVar(&opts.debug, "debug", false, "Dump the parsed input to stderr")
	flag.StringVar(&opts.fgprof, "fgprof", "", "Write a wall-clock profile to `file`")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	name := flag.Arg(0)
	fn, ok := solutions[name]
	if !ok {
		log.Fatalf("unknown solution %q", name)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if err := opts.loadConfig(set); err != nil {
		log.Fatal(err)
	}
	if err := run(&opts, name, fn, flag.Args()[1:]); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [file]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

func run(opts *options, name string, fn solution, args []string) error {
	if len(args) > 1 {
		return errors.New("too many arguments")
	}
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	path := opts.inputPath(args)
	if opts.watch && (path == "" || opts.interactive) {
		return errors.New("-watch needs an input file")
	}
	if opts.fgprof != "" {
		stop, err := startProfile(opts.fgprof)
		if err != nil {
			return err
		}
		defer func() {
			if err := stop(); err != nil {
				log.Println("Error writing profile:", err)
			}
		}()
	}

	solve := func() error {
		input, err := opts.readInput(path)
		if err != nil {
			return err
		}
		rep, err := fn(opts, input)
		if err != nil {
			return fmt.Errorf("solution %s: %w", name, err)
		}
		rep.Solution = name
		return rep.write(os.Stdout, opts.format, opts.comma)
	}
	if err := solve(); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return watch(ctx, path, func() {
		if err := solve(); err != nil {
			log.Printf("%s: %s", path, err)
		}
	})
}

// A solution turns the acquired puzzle input into a report.
type solution func(opts *options, input string) (*report, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
