package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sidsector9/tableblock/tui"
)

func main() {
	p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tabledit: %v\n", err)
		os.Exit(1)
	}
}
