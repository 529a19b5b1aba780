package cmd

import (
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"nifty-filter/internal/brand"
	"nifty-filter/internal/errors"
	"nifty-filter/internal/firewall"
	"nifty-filter/internal/i18n"
	"nifty-filter/internal/metrics"
)

func newDiffCmd(opts *rootOptions) *cobra.Command {
	var against string
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the generated ruleset with an installed one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd, opts, against)
		},
	}
	cmd.Flags().StringVar(&against, "against", brand.GetRulesetPath(), "installed ruleset to compare with")
	return cmd
}

func runDiff(cmd *cobra.Command, opts *rootOptions, against string) error {
	in, err := loadInputs(opts)
	if err != nil {
		return err
	}
	generated, err := generate(in, metrics.NewRecorder())
	if err != nil {
		return err
	}

	data, err := os.ReadFile(against)
	if err != nil {
		return errors.Wrapf(err, errors.KindIO, "failed to read %s", against)
	}
	installed := firewall.Normalize(string(data))

	out := cmd.OutOrStdout()
	if installed == generated {
		printer(cmd).Fprintf(out, i18n.MsgRulesetMatches, against)
		return nil
	}

	if err := writeDiff(out, against, installed, generated); err != nil {
		return err
	}
	printer(cmd).Fprintf(out, i18n.MsgRulesetDiffers, against)
	return errSilent
}

// writeDiff writes a unified diff from the installed ruleset to the generated one.
func writeDiff(w io.Writer, from, installed, generated string) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(installed + "\n"),
		B:        difflib.SplitLines(generated + "\n"),
		FromFile: from,
		ToFile:   "generated",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "failed to build diff")
	}
	if _, err := io.WriteString(w, text); err != nil {
		return errors.Wrap(err, errors.KindIO, "failed to write diff")
	}
	return nil
}
