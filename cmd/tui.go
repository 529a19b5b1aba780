package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"nifty-filter/internal/firewall"
	"nifty-filter/internal/host"
	"nifty-filter/internal/logging"
	"nifty-filter/internal/network"
	"nifty-filter/internal/tui"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := loadInputs(opts)
			if err != nil {
				return err
			}

			backend := &tui.SystemBackend{
				In:         in,
				Enumerator: network.NewEnumerator(),
				Services:   host.NewServiceChecker(),
			}
			if src, err := firewall.NewLiveSource(); err != nil {
				logging.WithComponent("tui").Info("live chains unavailable", "error", err)
			} else {
				backend.ChainSource = src
			}

			p := tea.NewProgram(tui.NewModel(backend),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}
