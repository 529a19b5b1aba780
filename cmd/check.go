package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nifty-filter/internal/config"
	"nifty-filter/internal/i18n"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the inputs without rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}
}

func runCheck(cmd *cobra.Command, opts *rootOptions) error {
	in, err := loadInputs(opts)
	if err != nil {
		return err
	}
	if _, err := config.Resolve(in); err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tVALUE\tSOURCE")
	fields := config.Fields()
	for _, f := range fields {
		value, ok := in.Lookup(f.Name)
		if !ok {
			value = f.Default
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, value, f.Source(in))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printer(cmd).Fprintf(cmd.OutOrStdout(), i18n.MsgInputsValid, len(fields))
	return nil
}
