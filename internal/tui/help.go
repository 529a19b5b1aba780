package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"nifty-filter/internal/brand"
	"nifty-filter/internal/config"
)

// HelpModel shows product information and the input reference.
type HelpModel struct {
	backend  Backend
	viewport viewport.Model
}

func NewHelpModel(backend Backend) HelpModel {
	return HelpModel{
		backend:  backend,
		viewport: viewport.New(80, 20),
	}
}

// Refresh rebuilds the page from the current inputs.
func (m HelpModel) Refresh() HelpModel {
	m.viewport.SetContent(helpContent(m.backend.Inputs()))
	m.viewport.GotoTop()
	return m
}

func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.viewport.Width = size.Width - 4
		m.viewport.Height = size.Height - 8
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m HelpModel) View() string {
	return m.viewport.View() + "\n" + hint(keys.Up, keys.Down, keys.Back)
}

func helpContent(in config.Inputs) string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(brand.Name))
	fmt.Fprintf(&b, " %s\n", brand.Version)
	b.WriteString(brand.Description + "\n")
	b.WriteString(StyleUnmanaged.Render(brand.Repository) + "\n\n")

	b.WriteString(StyleHeader.Render("Inputs"))
	b.WriteString("\n")
	for _, f := range config.Fields() {
		def := f.Default
		switch {
		case f.Required:
			def = "(required)"
		case def == "":
			def = "(empty)"
		}
		fmt.Fprintf(&b, "%-21s %-8s %s\n", f.Name, f.Source(in), f.Description)
		fmt.Fprintf(&b, "%-21s %s\n", "", StyleUnmanaged.Render("default: "+def))
	}
	return b.String()
}
