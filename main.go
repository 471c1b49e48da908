package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mycafe/internal/ui"
)

func main() {
	// Diagnostics go to a file so they don't tear up the TUI
	if f, err := tea.LogToFile("mycafe.log", "mycafe"); err == nil {
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(ui.NewModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
