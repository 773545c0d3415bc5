package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eigerco/checkedint/internal/boundary"
	"github.com/eigerco/checkedint/internal/golden"
	"github.com/eigerco/checkedint/pkg/checked"
	"github.com/eigerco/checkedint/pkg/db/pebble"
	"github.com/eigerco/checkedint/pkg/log"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitBadUsage = 2
)

type config struct {
	types    []string
	ops      []checked.Op
	extended bool
	record   string
	verify   string
	logOpts  log.Options
}

var errUsage = errors.New("usage")

func parseConfig(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("checkedint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	types := fs.String("types", "int32,uint32", "comma separated integer types, or all")
	ops := fs.String("ops", "add,sub,mul,div,neg", "comma separated operations (add,sub,mul,div,rem,neg)")
	extended := fs.Bool("extended", false, "add the neighbours of every bound to the samples")
	record := fs.String("record", "", "store the matrices in the pebble store at this directory")
	verify := fs.String("verify", "", "check the matrices against the pebble store at this directory")
	logLevel := fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	logType := fs.String("log-type", "console", "log format (console, json)")

	if err := fs.Parse(args); err != nil {
		return config{}, fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg := config{extended: *extended, record: *record, verify: *verify}
	if cfg.record != "" && cfg.verify != "" {
		return config{}, fmt.Errorf("%w: -record and -verify are mutually exclusive", errUsage)
	}

	if *types == "all" {
		cfg.types = boundary.Types
	} else {
		for _, name := range splitList(*types) {
			if !isKnownType(name) {
				return config{}, fmt.Errorf("%w: %w: %q", errUsage, boundary.ErrUnknownType, name)
			}
			cfg.types = append(cfg.types, name)
		}
	}
	for _, name := range splitList(*ops) {
		op, err := checked.ParseOp(name)
		if err != nil {
			return config{}, fmt.Errorf("%w: %v", errUsage, err)
		}
		cfg.ops = append(cfg.ops, op)
	}
	if len(cfg.types) == 0 || len(cfg.ops) == 0 {
		return config{}, fmt.Errorf("%w: at least one type and one operation are required", errUsage)
	}

	lvl, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		return config{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	typ, err := log.ParseLoggerType(*logType)
	if err != nil {
		return config{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg.logOpts = log.Options{LogLevel: lvl, Type: typ, Out: stderr}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isKnownType(name string) bool {
	for _, t := range boundary.Types {
		if t == name {
			return true
		}
	}
	return false
}

func run(cfg config, stdout io.Writer) error {
	matrices := make([]boundary.Matrix, 0, len(cfg.types))
	for i, name := range cfg.types {
		m, err := boundary.RunNamed(name, cfg.extended, cfg.ops)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(stdout, strings.Repeat("-", 70))
		}
		if _, err := m.WriteTo(stdout); err != nil {
			return err
		}
		log.Harness.Info().Str("type", name).Int("outcomes", len(m.Outcomes)).
			Int("overflows", m.Overflows()).Msg("matrix done")
		matrices = append(matrices, m)
	}

	dir := cfg.record
	if dir == "" {
		dir = cfg.verify
	}
	if dir == "" {
		return nil
	}

	kv, err := pebble.Open(dir)
	if err != nil {
		return err
	}
	defer kv.Close()
	store := golden.New(kv)

	if cfg.record != "" {
		return store.Record(matrices...)
	}
	var errs []error
	for _, m := range matrices {
		if err := store.Verify(m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// main prints the boundary matrix of the chosen integer types.
// go run ./cmd/checkedint -types all -extended
func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitBadUsage
	}
	log.Init(cfg.logOpts)

	if err := run(cfg, stdout); err != nil {
		log.Root.Error().Msg("checkedint failed")
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	return exitOK
}
