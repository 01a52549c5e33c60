package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/picker"
	"github.com/go-drift/pickers/pkg/timepicker"
)

func init() {
	RegisterCommand(&Command{
		Name:  "time",
		Short: "Show how a time lands on the time picker wheels",
		Long: `Show the time a time picker would select for an initial HH:MM value.

Minutes are rounded up to the next multiple of the step; rounding past :59
moves to the next hour. The wheel indices are those of the middle replica.`,
		Usage: "pickers time [--step N] [--24h] [--locale TAG] HH:MM",
		Run:   runTime,
	})
}

func runTime(args []string) error {
	fs := flag.NewFlagSet("time", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	step := fs.Int("step", int(timepicker.DefaultGranularity), "minute step: 1, 5, 10, 15 or 30")
	is24 := fs.Bool("24h", false, "use a 24-hour clock")
	locale := fs.String("locale", "en", "BCP 47 language tag")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("time requires exactly one HH:MM argument")
	}

	in, err := calendar.ParseClock(fs.Arg(0))
	if err != nil {
		return err
	}
	g, err := timepicker.ParseGranularity(*step)
	if err != nil {
		return err
	}
	tag, err := calendar.ParseLocale(*locale)
	if err != nil {
		return err
	}

	st, err := timepicker.New(
		timepicker.WithTime(in),
		timepicker.WithGranularity(g),
		timepicker.With24Hour(*is24),
		timepicker.WithLocale(tag),
	)
	if err != nil {
		return err
	}
	defer st.Dispose()

	snap := st.Snapshot()
	fmt.Fprintf(stdout, "input     %s\n", in)
	fmt.Fprintf(stdout, "selected  %s (%s)\n", snap.Time, picker.FormatTime(snap.Time, "", snap.Is24Hour, tag))
	fmt.Fprintf(stdout, "hour      index %d\n", snap.HourIndex)
	fmt.Fprintf(stdout, "minute    index %d\n", snap.MinuteIndex)
	if !snap.Is24Hour {
		fmt.Fprintf(stdout, "meridiem  %s\n", calendar.MeridiemNames(tag)[snap.MeridiemIndex])
	}
	return nil
}
