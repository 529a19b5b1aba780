package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"nifty-filter/internal/config"
	"nifty-filter/internal/errors"
	"nifty-filter/internal/firewall"
	"nifty-filter/internal/network"
)

type fakeBackend struct {
	infos      []network.InterfaceInfo
	conflicts  []string
	ruleset    string
	rulesetErr error
	chains     []firewall.ChainSummary
	chainsErr  error
	in         config.Inputs
}

func (f *fakeBackend) Interfaces() ([]network.InterfaceInfo, error) { return f.infos, nil }
func (f *fakeBackend) ActiveConflicts() []string                     { return f.conflicts }
func (f *fakeBackend) Ruleset() (string, error)                      { return f.ruleset, f.rulesetErr }
func (f *fakeBackend) Chains() ([]firewall.ChainSummary, error)      { return f.chains, f.chainsErr }
func (f *fakeBackend) Inputs() config.Inputs                         { return f.in }

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		infos: []network.InterfaceInfo{
			{Name: "eth0", Type: network.TypePhysicalEthernet, MAC: "52:54:00:12:34:56", Status: "Up", Addresses: []string{"192.168.1.1"}, Hardware: "virtio_net (virtio0)"},
			{Name: "docker0", Type: network.TypeBridge, Status: "Down"},
		},
		ruleset: "flush ruleset",
		chains: []firewall.ChainSummary{
			{Table: "filter", Family: "inet", Name: "input", Type: "filter", Hook: "input", Policy: "drop"},
		},
		in: config.NewInputs(map[string]string{config.KeyInterfaceLAN: "eth0"}),
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	out, ok := m.(Model)
	require.True(t, ok)
	return out, cmd
}

// drain runs cmd and feeds any resulting messages back into the model.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = drain(t, m, c)
		}
		return m
	}
	m, next := send(t, m, msg)
	return drain(t, m, next)
}

func TestModel_StartsAtMenu(t *testing.T) {
	m := NewModel(newFakeBackend())
	assert.Equal(t, PageMenu, m.Page())
	assert.Nil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "Network")
	assert.Contains(t, view, "Firewall")
	assert.Contains(t, view, "Help")
}

func TestModel_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			_, cmd := send(t, NewModel(newFakeBackend()), keyPress(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_NetworkPage(t *testing.T) {
	defer goleak.VerifyNone(t)

	m, cmd := send(t, NewModel(newFakeBackend()), keyPress("enter"))
	assert.Equal(t, PageNetwork, m.Page())
	assert.Contains(t, m.View(), "Loading interfaces")

	m = drain(t, m, cmd)
	view := m.View()
	assert.Contains(t, view, "eth0")
	assert.Contains(t, view, "docker0")
	assert.Contains(t, view, "52:54:00:12:34:56")
	assert.Contains(t, view, "192.168.1.1")
	assert.Contains(t, view, "virtio_net (virtio0)")

	m, _ = send(t, m, keyPress("down"))
	view = m.View()
	assert.Contains(t, view, "not managed")
	assert.Contains(t, view, "IPv4")
	assert.Contains(t, view, "None")

	m, cmd = send(t, m, keyPress("esc"))
	assert.Nil(t, cmd)
	assert.Equal(t, PageMenu, m.Page())
}

func TestModel_NetworkConflicts(t *testing.T) {
	b := newFakeBackend()
	b.conflicts = []string{"NetworkManager"}

	m, cmd := send(t, NewModel(b), keyPress("enter"))
	m = drain(t, m, cmd)
	assert.Contains(t, m.View(), "NetworkManager")
	assert.Contains(t, m.View(), "Conflicting services")
}

func TestModel_FirewallPage(t *testing.T) {
	defer goleak.VerifyNone(t)

	m, _ := send(t, NewModel(newFakeBackend()), keyPress("down"))
	m, cmd := send(t, m, keyPress("enter"))
	assert.Equal(t, PageFirewall, m.Page())

	m = drain(t, m, cmd)
	view := m.View()
	assert.Contains(t, view, "flush ruleset")
	assert.Contains(t, view, "input")
}

func TestModel_FirewallErrors(t *testing.T) {
	var list errors.List
	list.Add(errors.MissingInput(config.KeyInterfaceWAN))
	list.Add(errors.MissingInput(config.KeySubnetLAN))

	b := newFakeBackend()
	b.rulesetErr = list.Err()
	b.chainsErr = errors.New(errors.KindInternal, "nftables is not available")

	m, _ := send(t, NewModel(b), keyPress("down"))
	m, cmd := send(t, m, keyPress("enter"))
	m = drain(t, m, cmd)

	view := m.View()
	assert.Contains(t, view, "Error: INTERFACE_WAN is not set")
	assert.Contains(t, view, "Error: SUBNET_LAN is not set")
	assert.Contains(t, view, "nftables is not available")
}

func TestModel_HelpPage(t *testing.T) {
	m, _ := send(t, NewModel(newFakeBackend()), keyPress("down"), keyPress("down"))
	m, cmd := send(t, m, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, PageHelp, m.Page())

	view := m.View()
	assert.Contains(t, view, "Inputs")
	assert.Contains(t, view, config.KeyInterfaceLAN)
}

func TestModel_MenuCursorBounds(t *testing.T) {
	m, _ := send(t, NewModel(newFakeBackend()), keyPress("up"))
	assert.Equal(t, 0, m.cursor)

	m, _ = send(t, m, keyPress("down"), keyPress("down"), keyPress("down"), keyPress("down"))
	assert.Equal(t, len(menuItems)-1, m.cursor)
}

func TestModel_WindowSize(t *testing.T) {
	m, cmd := send(t, NewModel(newFakeBackend()), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 116, m.firewall.viewport.Width)
}
