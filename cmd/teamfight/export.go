package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/teamfight/internal/errors"
	"github.com/vango-dev/teamfight/internal/tracker"
)

func exportCmd(dir *string) *cobra.Command {
	var (
		data   string
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded matches",
		Long: `Export the recorded matches in their normalized form.

json writes one indented array; ndjson writes one match per line.

Examples:
  teamfight export > matches.json
  teamfight export --format=ndjson -o matches.ndjson`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "ndjson" {
				return errors.New("T031").WithDetailf("Got %q.", format)
			}

			cfg, err := loadConfig(*dir)
			if err != nil {
				return err
			}
			if data != "" {
				cfg.Data.File = data
			}
			matches, err := loadMatches(cfg, newLogger(cfg, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := writeMatches(w, matches, format); err != nil {
				return err
			}
			if output != "" {
				success(cmd.ErrOrStderr(), "Exported %d matches to %s", len(matches), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Data file holding the matches")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or ndjson")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func writeMatches(w io.Writer, matches []tracker.Match, format string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if format == "ndjson" {
		for _, m := range matches {
			if err := enc.Encode(m); err != nil {
				return err
			}
		}
		return nil
	}
	if matches == nil {
		matches = []tracker.Match{}
	}
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}
