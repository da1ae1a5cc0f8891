package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/plaincheck/internal/analyzer"
	"github.com/dshills/plaincheck/internal/document"
	"github.com/dshills/plaincheck/internal/render"
	"github.com/dshills/plaincheck/internal/report"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	format    string
	out       string
	failUnder int
	verbose   bool
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check [file ...]",
		Short: "Analyze text files (or stdin) and report jargon, passive voice, and a score",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, f, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "Output format: json or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.IntVar(&f.failUnder, "fail-under", 0, "Exit non-zero if any input scores below this value")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runCheck(paths []string, f *checkFlags, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	format := strings.ToLower(f.format)
	if format != "json" && format != "md" {
		return exitError(3, "unknown format: %s", f.format)
	}
	if f.failUnder < 0 || f.failUnder > report.MaxScore {
		return exitError(3, "--fail-under must be between 0 and %d, got %d", report.MaxScore, f.failUnder)
	}
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	// 1. Load and analyze each input
	var results []report.Result
	for _, p := range paths {
		var (
			doc *document.Document
			err error
		)
		if p == "-" {
			verbose("Reading stdin")
			doc, err = document.Read(document.StdinName, stdin)
		} else {
			verbose("Loading: %s", p)
			doc, err = document.Load(p)
		}
		if err != nil {
			return exitError(3, "failed to load input: %v", err)
		}

		rep := analyzer.Analyze(doc.Raw)
		verbose("%s: %d jargon, %d passive, score %d", doc.FilePath, len(rep.Jargon), len(rep.Passive), rep.Score)

		name := doc.FilePath
		if name != document.StdinName {
			name = filepath.Base(name)
		}
		results = append(results, report.NewResult("plaincheck", version, report.Input{File: name, Hash: doc.Hash}, rep))
	}

	// 2. Render
	var output string
	switch format {
	case "json":
		var v any = results
		if len(results) == 1 {
			v = results[0]
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		var parts []string
		for i := range results {
			parts = append(parts, render.Markdown(&results[i]))
		}
		output = strings.Join(parts, "---\n\n")
	}

	// 3. Output
	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(stdout, output)
	}

	// 4. Exit code based on --fail-under
	if f.failUnder > 0 {
		for _, r := range results {
			if r.Summary.Score < f.failUnder {
				return exitError(2, "%s scored %d, below threshold %d", r.Input.File, r.Summary.Score, f.failUnder)
			}
		}
	}
	return nil
}
