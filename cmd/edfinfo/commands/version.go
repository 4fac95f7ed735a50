package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/simonhull/edfmeta"
	"github.com/simonhull/edfmeta/internal/cli/output"
)

func newVersionCmd() *cobra.Command {
	var (
		short  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the edfinfo version, build information, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := edfmeta.GetVersionInfo()
			out := cmd.OutOrStdout()

			if short {
				_, err := fmt.Fprintln(out, info.Version)
				return err
			}

			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			if outFormat == output.FormatJSON || outFormat == output.FormatYAML {
				return output.NewPrinter(out, outFormat).Print(info)
			}

			fmt.Fprintf(out, "edfinfo %s\n", info.Version)
			fmt.Fprintf(out, "  Commit:     %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Built:      %s\n", info.BuildTime)
			fmt.Fprintf(out, "  Go version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Show only version number")
	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format (text, json, yaml)")

	return cmd
}
