package commands

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/edfmeta"
	"github.com/simonhull/edfmeta/internal/cli/output"
)

type headerFlags struct {
	output string
	latin1 bool
	strict bool
}

func newHeaderCmd(a *app) *cobra.Command {
	flags := &headerFlags{}

	cmd := &cobra.Command{
		Use:   "header <file>...",
		Short: "Print the header of one or more EDF files",
		Long: `Decode the fixed header of each file and print it.

Files are decoded concurrently and printed in the order given. If any file
fails to decode nothing is printed and edfinfo exits with status 1.

Examples:
  # Canonical text rendering
  edfinfo header recording.edf

  # Several files as a table
  edfinfo header -o table night1.edf night2.edf

  # Machine-readable output
  edfinfo header -o json *.edf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader(cmd, a, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format (text, table, json, yaml)")
	cmd.Flags().BoolVar(&flags.latin1, "latin1", false, "decode text fields as ISO-8859-1")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat header warnings as errors")

	return cmd
}

func runHeader(cmd *cobra.Command, a *app, flags *headerFlags, paths []string) error {
	format := a.cfg.Output
	if cmd.Flags().Changed("output") {
		format = flags.output
	}
	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	opts := []edfmeta.Option{edfmeta.WithLogger(a.log)}
	if a.cfg.Latin1 || flags.latin1 {
		opts = append(opts, edfmeta.WithLatin1())
	}
	if a.cfg.Strict || flags.strict {
		opts = append(opts, edfmeta.WithStrictParsing())
	}

	files, err := edfmeta.OpenMany(cmd.Context(), paths, opts...)
	if err != nil {
		return err
	}

	views := make([]output.FileView, 0, len(files))
	for _, f := range files {
		for _, w := range f.Warnings {
			a.log.Warn("header warning",
				"path", f.Path,
				"stage", w.Stage,
				"offset", w.Offset,
				"message", w.Message,
			)
		}
		views = append(views, output.NewFileView(f))
	}

	return output.NewPrinter(cmd.OutOrStdout(), outFormat).PrintFiles(views)
}
