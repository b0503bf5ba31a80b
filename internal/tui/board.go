package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"vitacoach/internal/engine"
)

// RunBoard opens the interactive dashboard until the user quits.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
