// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"log/slog"
	"os"

	"github.com/z5labs/stratum"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	err := newCommand().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var verbose bool
	var output string

	cmd := &cobra.Command{
		Use:   "stratum file...",
		Short: "Merge layered YAML configuration files",
		Long: `stratum merges the given YAML files, in order, into a single document and
prints the result. Later files override earlier ones: mappings merge key by
key, sequences merge positionally, scalars are replaced. Files which cannot
be read or parsed are skipped.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			merger := stratum.New(
				stratum.LoaderFunc(os.ReadFile),
				stratum.LogHandler(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: level,
				})),
			)

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			err := enc.Encode(merger.Merge(args...))
			if err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log skipped files to stderr")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the merged document to a file instead of stdout")
	return cmd
}
