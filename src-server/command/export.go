package command

import (
	"fmt"
	"time"

	"naptar/src-server/export"

	"github.com/spf13/cobra"
)

func (c *cli) exportCmd() *cobra.Command {
	var (
		year int
		dir  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the .ics feeds and the JSON snapshot of a year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = c.as.Config.GetExportDir()
			}
			if dir == "" {
				dir = "data"
			}

			exporter := export.New(c.as.Aggregator, c.as.Metrics)
			report, err := exporter.Export(cmd.Context(), dir, year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range report.Written {
				fmt.Fprintf(out, "written   %s\n", path)
			}
			for _, path := range report.Unchanged {
				fmt.Fprintf(out, "unchanged %s\n", path)
			}
			for _, feed := range report.Skipped {
				fmt.Fprintf(out, "skipped   %s (no events in %d)\n", feed.FileName(year), year)
			}
			for _, path := range report.Removed {
				fmt.Fprintf(out, "removed   %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "year to export")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default EXPORT_DIR, then ./data)")
	return cmd
}
