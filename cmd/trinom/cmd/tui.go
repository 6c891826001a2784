package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/trinom/internal/tui"
)

// runTUI starts the menu in the terminal.
//
// Navigation:
//
//	↑/↓, 0-4  - choose an action
//	Enter     - confirm an answer
//	g         - show the graph of a study
//	Esc       - back to the menu
//	Ctrl+C    - quit
func runTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(
		tui.NewModel(env.session()),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Erreur TUI : %v\n", err)
		return err
	}
	return nil
}
