package command

import (
	"fmt"
	"strings"
	"time"

	"naptar/src-server/calendar"
	"naptar/src-server/render"

	"github.com/spf13/cobra"
)

func (c *cli) dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "day <date or phrase>",
		Short:   "Show what happens on a day",
		Example: "  naptar day 2026-02-18\n  naptar day next wednesday",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := c.as.ResolveDate(strings.Join(args, " "), time.Now())
			if err != nil {
				return err
			}
			result, err := c.as.Aggregator.GetCalendarData(cmd.Context(), date.Year(), false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			line := render.New(out).Day(result.CalendarData[calendar.Key(date)], true)
			if line == "" {
				weekday := calendar.WeekdayNames()[calendar.MondayIndex(date)]
				line = fmt.Sprintf("%s %s  nothing on this day", date.Format("01-02"), weekday)
			}
			fmt.Fprintf(out, "%d-%s\n", date.Year(), line)
			return nil
		},
	}
}
