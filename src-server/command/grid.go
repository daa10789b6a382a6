package command

import (
	"fmt"
	"time"

	"naptar/src-server/render"

	"github.com/spf13/cobra"
)

func (c *cli) gridCmd() *cobra.Command {
	now := time.Now()
	var (
		year      int
		month     int
		nameDays  bool
		wasteOnly bool
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the calendar grid of a month, or of a whole year",
		Long: "Print the calendar grid of a month. With --year and without --month\n" +
			"every month of that year is printed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			annual := cmd.Flags().Changed("year") && !cmd.Flags().Changed("month")
			if !annual && (month < 1 || month > 12) {
				return fmt.Errorf("invalid month %d", month)
			}
			result, err := c.as.Aggregator.GetCalendarData(cmd.Context(), year, wasteOnly)
			if err != nil {
				return err
			}

			state := render.State{
				Year:         year,
				Month:        time.Month(month),
				ShowNameDays: nameDays && !wasteOnly,
			}
			out := cmd.OutOrStdout()
			renderer := render.New(out)
			if annual {
				fmt.Fprint(out, renderer.Year(state, result.CalendarData))
			} else {
				fmt.Fprint(out, renderer.Month(state, result.CalendarData))
			}
			if !c.as.Aggregator.SupportsWaste(year) {
				fmt.Fprintf(out, "\nno waste collection data for %d\n", year)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", now.Year(), "year")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "month, 1-12 (every month when only --year is given)")
	cmd.Flags().BoolVar(&nameDays, "namedays", false, "list namedays below the grid")
	cmd.Flags().BoolVar(&wasteOnly, "waste-only", false, "skip holidays and namedays")
	return cmd
}
