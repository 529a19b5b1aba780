package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"nifty-filter/internal/errors"
	"nifty-filter/internal/firewall"
)

type rulesetMsg struct {
	text string
	err  error
}

type chainsMsg struct {
	chains []firewall.ChainSummary
	err    error
}

// FirewallModel previews the generated ruleset and the live chains.
type FirewallModel struct {
	backend Backend

	ruleset   string
	rulesErr  error
	chains    []firewall.ChainSummary
	chainsErr error
	loaded    bool

	viewport viewport.Model
}

func NewFirewallModel(backend Backend) FirewallModel {
	return FirewallModel{
		backend:  backend,
		viewport: viewport.New(80, 20),
	}
}

// Load renders the ruleset and reads the live chains.
func (m FirewallModel) Load() tea.Cmd {
	b := m.backend
	return tea.Batch(
		func() tea.Msg {
			text, err := b.Ruleset()
			return rulesetMsg{text: text, err: err}
		},
		func() tea.Msg {
			chains, err := b.Chains()
			return chainsMsg{chains: chains, err: err}
		},
	)
}

func (m FirewallModel) Update(msg tea.Msg) (FirewallModel, tea.Cmd) {
	switch msg := msg.(type) {
	case rulesetMsg:
		m.loaded = true
		m.ruleset, m.rulesErr = msg.text, msg.err
		m.viewport.SetContent(m.content())
		return m, nil
	case chainsMsg:
		m.chains, m.chainsErr = msg.chains, msg.err
		m.viewport.SetContent(m.content())
		return m, nil
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// content is the text shown in the viewport.
func (m FirewallModel) content() string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Generated ruleset"))
	b.WriteString("\n")
	if m.rulesErr != nil {
		for _, err := range errors.Split(m.rulesErr) {
			b.WriteString(StyleStatusBad.Render("Error: " + err.Error()))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.ruleset)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleHeader.Render("Live chains"))
	b.WriteString("\n")
	switch {
	case m.chainsErr != nil:
		b.WriteString(StyleUnmanaged.Render(m.chainsErr.Error()))
	case len(m.chains) == 0:
		b.WriteString(StyleUnmanaged.Render("No chains loaded"))
	default:
		for _, c := range m.chains {
			fmt.Fprintf(&b, "%-6s %-12s %-12s %-12s %s\n", c.Family, c.Table, c.Name, c.Hook, c.Policy)
		}
	}
	return b.String()
}

func (m FirewallModel) View() string {
	if !m.loaded {
		return "Rendering ruleset..."
	}
	return m.viewport.View() + "\n" + hint(keys.Up, keys.Down, keys.Back)
}
