// Package config loads the command-line configuration of the game.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dungeon/pkg/engine/observability"
)

// Environment variables read by Load. A flag given on the command line
// beats the environment.
const (
	EnvFile         = "DUNGEON_FILE"
	EnvDebug        = "DUNGEON_DEBUG"
	EnvLogFile      = "DUNGEON_LOG_FILE"
	EnvPlaceholders = "DUNGEON_MAP_PLACEHOLDERS"
	EnvNoColor      = "DUNGEON_NO_COLOR"
)

// DefaultLogFile is where diagnostics go when debugging is on
const DefaultLogFile = "dungeon.log"

// Config holds the application configuration.
type Config struct {
	// File is a dungeon definition to load; empty plays the built-in dungeon
	File string

	Debug   bool
	LogFile string

	// Placeholders shows unvisited neighbours of visited rooms on the map
	Placeholders bool
	NoColor      bool

	Tracing observability.Config
}

// Load builds a Config from the environment and then the given
// command-line arguments, not including the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{
		File:    os.Getenv(EnvFile),
		LogFile: DefaultLogFile,
		Tracing: observability.LoadConfigFromEnv(),
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}

	var err error
	if cfg.Debug, err = envBool(EnvDebug); err != nil {
		return nil, err
	}
	if cfg.Placeholders, err = envBool(EnvPlaceholders); err != nil {
		return nil, err
	}
	if cfg.NoColor, err = envBool(EnvNoColor); err != nil {
		return nil, err
	}

	fs := newFlagSet(cfg, io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		fileFlag := false
		fs.Visit(func(f *flag.Flag) {
			fileFlag = fileFlag || f.Name == "file"
		})
		if fileFlag || fs.NArg() > 1 {
			return nil, fmt.Errorf("unexpected argument %q", fs.Arg(fs.NArg()-1))
		}
		cfg.File = fs.Arg(0)
	}

	return cfg, nil
}

// Usage writes the flag help to w
func Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: dungeon [flags] [file.yaml]")
	newFlagSet(&Config{LogFile: DefaultLogFile}, w).PrintDefaults()
}

func newFlagSet(cfg *Config, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("dungeon", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.File, "file", cfg.File, "dungeon definition (YAML) to play")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write diagnostics to the log file")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file used with -debug")
	fs.BoolVar(&cfg.Placeholders, "placeholders", cfg.Placeholders, "show unvisited neighbours on the map")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable terminal colours")
	fs.BoolVar(&cfg.Tracing.Enabled, "trace", cfg.Tracing.Enabled, "export OpenTelemetry traces")
	return fs
}

func envBool(name string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
