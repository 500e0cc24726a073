// Command nhicheck validates NHI numbers from the command line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"nhicheck/pkg/nhi"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "nhicheck",
		Short:         "Validate NHI numbers against HISO 10046:2023",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(validateCmd())
	return cmd
}

type checkOutput struct {
	Input  string `json:"input"`
	NHI    string `json:"nhi,omitempty"`
	Valid  bool   `json:"valid"`
	Format string `json:"format,omitempty"`
	Test   bool   `json:"test,omitempty"`
}

func validateCmd() *cobra.Command {
	var (
		jsonOut     bool
		excludeTest bool
	)

	cmd := &cobra.Command{
		Use:   "validate [NHI...]",
		Short: "Validate NHI numbers from arguments or stdin",
		Long: `Validate candidate NHI numbers against the HISO 10046:2023
validation routine. Candidates are read from the arguments, or one per
line from stdin when no arguments are given.

A valid result means the value is consistent with the standard, not
that the number has been assigned to a person. Values beginning with Z
are reserved for testing; pass --exclude-test to treat them as invalid.

The exit status is non-zero when any candidate fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := args
			if len(candidates) == 0 {
				var err error
				candidates, err = readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			}
			if len(candidates) == 0 {
				return fmt.Errorf("no candidates given")
			}

			failures := 0
			out := cmd.OutOrStdout()
			for _, candidate := range candidates {
				result := check(candidate, excludeTest)
				if !result.Valid {
					failures++
				}
				if jsonOut {
					line, err := json.Marshal(result)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, string(line))
					continue
				}
				fmt.Fprintln(out, describe(result))
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d candidates invalid", failures, len(candidates))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit one JSON object per candidate")
	cmd.Flags().BoolVar(&excludeTest, "exclude-test", false, "treat numbers reserved for testing (Z prefix) as invalid")
	return cmd
}

func check(candidate string, excludeTest bool) checkOutput {
	parsed, err := nhi.Parse(candidate)
	if err != nil {
		return checkOutput{Input: candidate}
	}
	if excludeTest && parsed.IsTest() {
		return checkOutput{Input: candidate, Test: true}
	}
	return checkOutput{
		Input:  candidate,
		NHI:    parsed.String(),
		Valid:  true,
		Format: string(parsed.Format()),
		Test:   parsed.IsTest(),
	}
}

func describe(r checkOutput) string {
	switch {
	case r.Valid && r.Test:
		return fmt.Sprintf("%s: valid (%s format, reserved for testing)", r.NHI, r.Format)
	case r.Valid:
		return fmt.Sprintf("%s: valid (%s format)", r.NHI, r.Format)
	case r.Test:
		return fmt.Sprintf("%s: rejected (reserved for testing)", r.Input)
	default:
		return fmt.Sprintf("%s: invalid", r.Input)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
