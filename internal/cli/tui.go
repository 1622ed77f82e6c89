package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"daytrack/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Take a safety snapshot on startup (after a successful load)
	ctx.PerformAutomaticSnapshot()

	p := tea.NewProgram(tui.NewModel(ctx.Store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
