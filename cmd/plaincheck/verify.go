package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dshills/plaincheck/internal/report"
	"github.com/dshills/plaincheck/internal/schema"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <result.json>",
		Short: "Check a saved JSON result for consistency with the rule tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runVerify(path string, stdout, stderr io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return exitError(3, "failed to read result: %v", err)
	}

	// check emits a single object for one input and an array for several.
	var results []report.Result
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return exitError(5, "failed to parse result as JSON: %v", err)
		}
	} else {
		var r report.Result
		if err := json.Unmarshal(data, &r); err != nil {
			return exitError(5, "failed to parse result as JSON: %v", err)
		}
		results = append(results, r)
	}

	failed := 0
	for i := range results {
		errs := schema.Validate(&results[i])
		if len(errs) == 0 {
			continue
		}
		failed++
		fmt.Fprintf(stderr, "%s: %d validation errors:\n", results[i].Input.File, len(errs))
		for _, e := range errs {
			fmt.Fprintf(stderr, "  %s\n", e)
		}
	}
	if failed > 0 {
		return exitError(5, "%d of %d results failed validation", failed, len(results))
	}
	fmt.Fprintf(stdout, "%d result(s) valid\n", len(results))
	return nil
}
