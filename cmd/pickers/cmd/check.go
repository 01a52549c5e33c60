package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/go-drift/pickers/pkg/config"
	"github.com/go-drift/pickers/pkg/picker"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate a configuration file",
		Long: `Validate a pickers.yaml file and print the settings the demo would use,
with defaults filled in.`,
		Usage: "pickers check [--config FILE]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("config", config.FileName, "configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return err
	}
	res, err := config.Resolve(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: ok\n", *path)
	fmt.Fprintf(stdout, "locale        %s\n", res.Locale)

	initial := "today"
	if res.Date.Initial != nil {
		initial = res.Date.Initial.String()
	}
	fmt.Fprintf(stdout, "date initial  %s\n", initial)
	if res.Date.Limiter != nil {
		lower, hasLower, upper, hasUpper := res.Date.Limiter.Bounds()
		if hasLower {
			fmt.Fprintf(stdout, "date min      %s\n", lower)
		}
		if hasUpper {
			fmt.Fprintf(stdout, "date max      %s\n", upper)
		}
		for _, d := range res.Date.Limiter.Excluded() {
			fmt.Fprintf(stdout, "date exclude  %s\n", d)
		}
	}
	printStyle("date", res.Date.Style)

	initial = "now"
	if res.Time.Initial != nil {
		initial = res.Time.Initial.String()
	}
	fmt.Fprintf(stdout, "time initial  %s\n", initial)
	fmt.Fprintf(stdout, "time 24h      %t\n", res.Time.Is24Hour)
	fmt.Fprintf(stdout, "time step     %d\n", res.Time.Granularity)
	printStyle("time", res.Time.Style)
	return nil
}

func printStyle(section string, s picker.Style) {
	fmt.Fprintf(stdout, "%-4s rows     %d\n", section, s.Rows)
	fmt.Fprintf(stdout, "%-4s scale    %.2f\n", section, s.SelectedScale)
}
