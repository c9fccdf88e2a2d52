package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/dq/internal/config"
	"github.com/jacoelho/dq/internal/document"
	"github.com/jacoelho/dq/internal/output"
	"github.com/jacoelho/dq/internal/query"
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cfg, exitResult := config.Parse(args)
	if exitResult != nil {
		if exitResult.ExitCode == 0 {
			exitResult.Output = stdout
		}
		exitResult.Print()
		return exitResult.ExitCode
	}

	withHeaders := len(cfg.Files) > 1
	for _, file := range cfg.Files {
		doc, err := document.Load(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}

		results, err := runQuery(cfg, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", file, err)
			return 1
		}

		if withHeaders {
			fmt.Fprintf(stdout, "%s:\n", file)
		}
		if err := output.Render(stdout, cfg.Format, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to render results: %v\n", err)
			return 1
		}
	}

	return 0
}

func runQuery(cfg *config.Config, doc any) ([]any, error) {
	if cfg.JSONPath != "" {
		return query.JSONPath(doc, cfg.JSONPath)
	}
	return query.New(doc).Find(cfg.Lookup, cfg.Select)
}
