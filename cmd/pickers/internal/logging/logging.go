// Package logging routes the standard logger and the Bubble Tea logger.
package logging

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures logging. With an empty filename log output is
// discarded, since the demo owns the terminal. Otherwise both the standard
// logger and Bubble Tea's debug log append to filename.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)

	tf, err := tea.LogToFile(filename, "pickers")
	if err != nil {
		f.Close()
		return nil, err
	}

	return func() {
		tf.Close()
		f.Close()
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	}, nil
}
