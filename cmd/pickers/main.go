// Command pickers inspects the date and time picker models and runs a
// terminal demo.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/pickers/cmd/pickers/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
