package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/dq/internal/exit"
	"github.com/jacoelho/dq/internal/output"
)

var (
	ErrNoArguments    = errors.New("no arguments provided")
	ErrNoInputFiles   = errors.New("no input files specified")
	ErrNoQuery        = errors.New("either --lookup or --jsonpath is required")
	ErrQueryConflict  = errors.New("--lookup and --jsonpath are mutually exclusive")
	ErrSelectConflict = errors.New("--select requires --lookup")
)

// Config represents the complete configuration for the dq tool.
type Config struct {
	// Input documents, queried in order.
	Files []string

	// Query: exactly one of Lookup or JSONPath.
	Lookup   string
	Select   string
	JSONPath string

	Format output.Format
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return ErrNoInputFiles
	}

	for _, file := range c.Files {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("input file %s not found: %w", file, err)
		}
	}

	if c.Lookup == "" && c.JSONPath == "" {
		return ErrNoQuery
	}
	if c.Lookup != "" && c.JSONPath != "" {
		return ErrQueryConflict
	}
	if c.Select != "" && c.Lookup == "" {
		return ErrSelectConflict
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage and error output since we handle both ourselves
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		lookup     = fs.String("lookup", "", "Lookup expression, e.g. 'status=up'")
		selectStmt = fs.String("select", "", "Select statement applied to lookup matches")
		jsonPath   = fs.String("jsonpath", "", "Standard JSONPath expression (instead of --lookup)")
		format     = fs.String("format", "text", "Output format: text, table, json or yaml")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	outputFormat, err := output.ParseFormat(*format)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	config := &Config{
		Files:    fs.Args(),
		Lookup:   *lookup,
		Select:   *selectStmt,
		JSONPath: *jsonPath,
		Format:   outputFormat,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `dq - query tool for nested JSON and YAML documents

Usage: dq [options] <file1> [file2] ...

Options:
  --lookup EXPR      Lookup expression matching keys and values at any depth,
                     e.g. 'status=up', 'name=_wildcard(eth*)', 'mtu=gt(1500)'
  --select STMT      Select statement shaping lookup matches,
                     e.g. 'select name, mtu where status eq(up)'
  --jsonpath EXPR    Standard JSONPath expression (instead of --lookup)
  --format FORMAT    Output format: text, table, json or yaml (default: text)
  -h, --help         Show this help message

Examples:
  dq --lookup status=up inventory.yaml
  dq --lookup 'name=_iwildcard(eth*)' devices.json
  dq --lookup status --select 'name, mtu where status eq(up)' devices.yaml
  dq --lookup mtu --select '* where mtu ge(9000)' core.yaml edge.yaml
  dq --jsonpath '$.interfaces[*].name' --format json devices.json`
}
