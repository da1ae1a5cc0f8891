package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/plaincheck/internal/render"
	"github.com/dshills/plaincheck/internal/rules"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the jargon dictionary and passive-voice patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}

func runRules(format string, w io.Writer) error {
	jargon := rules.Jargon()
	passive := rules.Passive()

	switch strings.ToLower(format) {
	case "text":
		fmt.Fprint(w, render.Rules(jargon, passive))
	case "json":
		data, err := json.MarshalIndent(struct {
			Jargon  []rules.JargonEntry    `json:"jargon"`
			Passive []rules.PassivePattern `json:"passive"`
		}{jargon, passive}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal rules: %w", err)
		}
		fmt.Fprintln(w, string(data))
	default:
		return exitError(3, "unknown format: %s", format)
	}
	return nil
}
