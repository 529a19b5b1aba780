package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"nifty-filter/internal/brand"
	"nifty-filter/internal/network"
)

type interfacesMsg struct {
	infos     []network.InterfaceInfo
	conflicts []string
	err       error
}

// NetworkModel lists interfaces with a details pane for the selected one.
type NetworkModel struct {
	backend Backend

	loaded    bool
	infos     []network.InterfaceInfo
	conflicts []string
	err       error
	cursor    int
	width     int
}

func NewNetworkModel(backend Backend) NetworkModel {
	return NetworkModel{backend: backend}
}

// Load fetches interfaces and conflicting services.
func (m NetworkModel) Load() tea.Cmd {
	b := m.backend
	return func() tea.Msg {
		infos, err := b.Interfaces()
		return interfacesMsg{infos: infos, conflicts: b.ActiveConflicts(), err: err}
	}
}

// Selected returns the highlighted interface.
func (m NetworkModel) Selected() (network.InterfaceInfo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.infos) {
		return network.InterfaceInfo{}, false
	}
	return m.infos[m.cursor], true
}

func (m NetworkModel) Update(msg tea.Msg) (NetworkModel, tea.Cmd) {
	switch msg := msg.(type) {
	case interfacesMsg:
		m.loaded = true
		m.infos, m.conflicts, m.err = msg.infos, msg.conflicts, msg.err
		if m.cursor >= len(m.infos) {
			m.cursor = 0
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.infos)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m NetworkModel) View() string {
	if !m.loaded {
		return "Loading interfaces..."
	}
	if m.err != nil {
		return StyleStatusBad.Render("Error: "+m.err.Error()) + "\n" + hint(keys.Back)
	}

	var rows []string
	for i, info := range m.infos {
		label := info.Name
		style := StyleItem
		if !info.Type.IsManaged() {
			style = StyleItem.Inherit(StyleUnmanaged)
		}
		if i == m.cursor {
			style = StyleItemSelected
		}
		rows = append(rows, style.Render(label))
	}
	if len(rows) == 0 {
		rows = append(rows, StyleItem.Render("(no interfaces)"))
	}
	list := StyleActiveCard.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	body := list
	if info, ok := m.Selected(); ok {
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, StyleCard.Render(interfaceDetails(info)))
	}
	if w := conflictWarnings(m.conflicts); w != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, StyleWarnCard.Render(w))
	}
	return body + "\n" + hint(keys.Up, keys.Down, keys.Back)
}

func interfaceDetails(info network.InterfaceInfo) string {
	ipv4 := info.FirstIPv4()
	if ipv4 == "" {
		ipv4 = "None"
	}
	mac := info.MAC
	if mac == "" {
		mac = "None"
	}

	managed := StyleStatusGood.Render(fmt.Sprintf("Managed by %s", brand.BinaryName))
	if !info.Type.IsManaged() {
		managed = StyleUnmanaged.Render(fmt.Sprintf("%s interfaces are not managed by %s", info.Type, brand.BinaryName))
	}

	lines := []string{
		detail("Name", info.Name),
		detail("Type", info.Type.String()),
		detail("MAC", mac),
		detail("Status", info.Status),
		detail("IPv4", ipv4),
		detail("Hardware", info.Hardware),
		"",
		managed,
	}
	return strings.Join(lines, "\n")
}

func detail(label, value string) string {
	return StyleLabel.Render(fmt.Sprintf("%-9s", label+":")) + " " + value
}

func conflictWarnings(active []string) string {
	if len(active) == 0 {
		return ""
	}
	lines := []string{StyleStatusWarn.Render("Conflicting services are running:")}
	for _, svc := range active {
		lines = append(lines, "  "+svc)
	}
	lines = append(lines, fmt.Sprintf("Disable them so %s can manage the network.", brand.BinaryName))
	return strings.Join(lines, "\n")
}
