package cmd

import (
	"flag"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/go-drift/pickers/cmd/pickers/internal/logging"
	"github.com/go-drift/pickers/cmd/pickers/internal/tui"
	"github.com/go-drift/pickers/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run the interactive picker demo",
		Long: `Run a terminal demo with a date picker and a time picker side by side.

Settings are read from pickers.yaml in the current directory when present.
When standard output is not a terminal a single frame is printed instead.

Keys:
  arrows/hjkl   move the day cursor or scroll the focused wheel
  enter         select the day under the cursor
  [ ]           previous and next month
  m             show or hide the month and year wheels
  tab           switch between the date and time picker
  q             quit`,
		Usage: "pickers demo [--config FILE] [--log FILE]",
		Run:   runDemo,
	})
}

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("config", config.FileName, "configuration file")
	logFile := fs.String("log", "", "write debug logs to file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cleanup, err := logging.Setup(*logFile)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := config.LoadOptional(*path)
	if err != nil {
		return err
	}
	res, err := config.Resolve(cfg)
	if err != nil {
		return err
	}

	m, err := tui.New(tui.Options{Date: res.DateOptions(), Time: res.TimeOptions()})
	if err != nil {
		return err
	}
	log.Printf("pickers: demo started, config %s", *path)

	if stdout == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.Run(m)
	}
	return tui.Dump(stdout, m)
}
