package cmd

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/pickers/pkg/calendar"
)

func init() {
	RegisterCommand(&Command{
		Name:  "limits",
		Short: "Check dates against a selection limiter",
		Long: `Report whether each date can be tapped in a date picker configured with
the given bounds and exclusions. Bounds are inclusive. Dates use the
YYYY-MM-DD form.`,
		Usage: "pickers limits [--min DATE] [--max DATE] [--exclude DATE,...] DATE...",
		Run:   runLimits,
	})
}

func runLimits(args []string) error {
	fs := flag.NewFlagSet("limits", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	minDate := fs.String("min", "", "earliest selectable date")
	maxDate := fs.String("max", "", "latest selectable date")
	exclude := fs.String("exclude", "", "comma-separated dates that cannot be selected")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("limits requires at least one date")
	}

	var opts []calendar.LimiterOption
	if *minDate != "" {
		d, err := calendar.ParseDate(*minDate)
		if err != nil {
			return fmt.Errorf("invalid --min: %w", err)
		}
		opts = append(opts, calendar.WithLowerBound(d))
	}
	if *maxDate != "" {
		d, err := calendar.ParseDate(*maxDate)
		if err != nil {
			return fmt.Errorf("invalid --max: %w", err)
		}
		opts = append(opts, calendar.WithUpperBound(d))
	}
	if *exclude != "" {
		for _, s := range strings.Split(*exclude, ",") {
			d, err := calendar.ParseDate(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("invalid --exclude: %w", err)
			}
			opts = append(opts, calendar.WithExcluded(d))
		}
	}
	limiter := calendar.NewLimiter(opts...)

	for _, arg := range fs.Args() {
		d, err := calendar.ParseDate(arg)
		if err != nil {
			return err
		}
		state := "disabled"
		if limiter.IsSelectable(d) {
			state = "selectable"
		}
		fmt.Fprintf(stdout, "%s  %-9s  %s\n", d, d.Weekday(), state)
	}
	return nil
}
