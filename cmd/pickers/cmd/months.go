package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/go-drift/pickers/pkg/calendar"
)

func init() {
	RegisterCommand(&Command{
		Name:  "months",
		Short: "List the months of a year",
		Long: `List the twelve months of a year with localized names, day counts and
the weekday each month starts on.`,
		Usage: "pickers months [--year YEAR] [--locale TAG]",
		Run:   runMonths,
	})
}

func runMonths(args []string) error {
	fs := flag.NewFlagSet("months", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	year := fs.Int("year", calendar.Today().Year, "year to list")
	locale := fs.String("locale", "en", "BCP 47 language tag")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *year < 1 {
		return fmt.Errorf("invalid year %d", *year)
	}
	tag, err := calendar.ParseLocale(*locale)
	if err != nil {
		return err
	}

	for _, m := range calendar.MonthsOf(*year, tag) {
		fmt.Fprintf(stdout, "%2d  %-12s %2d days  starts %s\n",
			m.Ordinal+1, m.Name, m.DayCount, m.FirstWeekday.LongName(tag))
	}
	return nil
}
