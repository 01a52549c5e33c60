package tui

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/pickers/pkg/errors"
	"github.com/go-drift/pickers/pkg/schedule"
)

// Run starts the interactive demo and blocks until the user quits. Delayed
// picker work is posted to the program so it runs on the update goroutine.
// Reported errors go to the log, which stays off the alternate screen.
func Run(m *Model) error {
	defer m.Dispose()

	errors.SetHandler(&errors.LogHandler{Verbose: true, Out: log.Writer()})
	defer errors.SetHandler(nil)

	program := tea.NewProgram(m, tea.WithAltScreen())
	schedule.RegisterDispatch(func(callback func()) {
		program.Send(dispatchMsg(callback))
	})
	defer schedule.RegisterDispatch(nil)

	if _, err := program.Run(); err != nil {
		log.Printf("tea program error: %v", err)
		return err
	}
	log.Println("pickers: exited")
	return nil
}

// Dump writes a single frame of the demo to w, for output that is not a
// terminal.
func Dump(w io.Writer, m *Model) error {
	defer m.Dispose()
	_, err := fmt.Fprintln(w, m.View())
	return err
}
