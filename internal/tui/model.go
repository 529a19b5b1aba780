package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"nifty-filter/internal/brand"
)

// Page is the currently active screen.
type Page int

const (
	PageMenu Page = iota
	PageNetwork
	PageFirewall
	PageHelp
)

var menuItems = []struct {
	Page  Page
	Label string
}{
	{PageNetwork, "Network"},
	{PageFirewall, "Firewall"},
	{PageHelp, "Help"},
}

// Model is the main application state.
type Model struct {
	backend Backend

	page   Page
	cursor int
	width  int
	height int

	network  NetworkModel
	firewall FirewallModel
	help     HelpModel
}

// NewModel creates the shell at the main menu.
func NewModel(backend Backend) Model {
	return Model{
		backend:  backend,
		page:     PageMenu,
		network:  NewNetworkModel(backend),
		firewall: NewFirewallModel(backend),
		help:     NewHelpModel(backend),
	}
}

// Page returns the active page.
func (m Model) Page() Page { return m.page }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.network, _ = m.network.Update(msg)
		m.firewall, _ = m.firewall.Update(msg)
		m.help, _ = m.help.Update(msg)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Force) {
			return m, tea.Quit
		}
		if m.page == PageMenu {
			return m.updateMenu(msg)
		}
		if key.Matches(msg, keys.Back) {
			m.page = PageMenu
			return m, nil
		}

	case interfacesMsg:
		var cmd tea.Cmd
		m.network, cmd = m.network.Update(msg)
		return m, cmd

	case rulesetMsg, chainsMsg:
		var cmd tea.Cmd
		m.firewall, cmd = m.firewall.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.page {
	case PageNetwork:
		m.network, cmd = m.network.Update(msg)
	case PageFirewall:
		m.firewall, cmd = m.firewall.Update(msg)
	case PageHelp:
		m.help, cmd = m.help.Update(msg)
	}
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit), key.Matches(msg, keys.Back):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Select):
		return m.open(menuItems[m.cursor].Page)
	}
	return m, nil
}

func (m Model) open(p Page) (tea.Model, tea.Cmd) {
	m.page = p
	switch p {
	case PageNetwork:
		return m, m.network.Load()
	case PageFirewall:
		return m, m.firewall.Load()
	case PageHelp:
		m.help = m.help.Refresh()
	}
	return m, nil
}

func (m Model) View() string {
	doc := m.viewTopBar() + "\n"

	switch m.page {
	case PageMenu:
		doc += m.viewMenu()
	case PageNetwork:
		doc += m.network.View()
	case PageFirewall:
		doc += m.firewall.View()
	case PageHelp:
		doc += m.help.View()
	}

	return StyleApp.Render(doc)
}

func (m Model) viewTopBar() string {
	title := StyleTitle.Render(brand.BinaryName)
	section := "Main Menu"
	for _, item := range menuItems {
		if item.Page == m.page {
			section = item.Label
		}
	}
	return StyleTopBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", StyleSubtitle.Render(section)))
}

func (m Model) viewMenu() string {
	var rows []string
	for i, item := range menuItems {
		if i == m.cursor {
			rows = append(rows, StyleItemSelected.Render(item.Label))
		} else {
			rows = append(rows, StyleItem.Render(item.Label))
		}
	}
	menu := StyleActiveCard.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return menu + "\n" + hint(keys.Up, keys.Down, keys.Select, keys.Quit)
}
