package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nifty-filter/internal/firewall"
	"nifty-filter/internal/i18n"
)

// chainSource is replaced in tests.
var chainSource = firewall.NewLiveSource

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the chains loaded in the kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := chainSource()
			if err != nil {
				return err
			}
			chains, err := src.Chains()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(chains) == 0 {
				printer(cmd).Fprintf(out, i18n.MsgNoChains)
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FAMILY\tTABLE\tCHAIN\tTYPE\tHOOK\tPOLICY")
			for _, c := range chains {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", c.Family, c.Table, c.Name, c.Type, c.Hook, c.Policy)
			}
			return tw.Flush()
		},
	}
}
