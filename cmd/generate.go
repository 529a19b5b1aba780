package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nifty-filter/internal/config"
	"nifty-filter/internal/errors"
	"nifty-filter/internal/firewall"
	"nifty-filter/internal/i18n"
	"nifty-filter/internal/logging"
	"nifty-filter/internal/metrics"
)

type generateOptions struct {
	output      string
	metricsFile string
}

func addGenerateFlags(cmd *cobra.Command, g *generateOptions) {
	cmd.Flags().StringVarP(&g.output, "output", "o", "", "write the ruleset to a file instead of stdout")
	cmd.Flags().StringVar(&g.metricsFile, "metrics-file", "", "write generation metrics in Prometheus textfile format")
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	g := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the nftables ruleset (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts, g)
		},
	}
	addGenerateFlags(cmd, g)
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, g *generateOptions) error {
	log := logging.WithComponent("generate")

	in, err := loadInputs(opts)
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	ruleset, genErr := generate(in, rec)
	if g.metricsFile != "" {
		if err := rec.WriteTextfile(g.metricsFile); err != nil {
			log.WithError(err).Warn("failed to write metrics")
		}
	}
	if genErr != nil {
		return genErr
	}

	if g.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), ruleset)
		return nil
	}
	if err := os.WriteFile(g.output, []byte(ruleset+"\n"), 0o644); err != nil {
		return errors.Wrapf(err, errors.KindIO, "failed to write %s", g.output)
	}
	printer(cmd).Fprintf(cmd.OutOrStdout(), i18n.MsgWroteRuleset, g.output, strings.Count(ruleset, "\n")+1)
	return nil
}

// generate runs resolve, render and normalize, recording the outcome.
func generate(in config.Inputs, rec *metrics.Recorder) (string, error) {
	log := logging.WithComponent("generate")

	r, err := config.Resolve(in)
	if err != nil {
		rec.RecordFailure(err)
		log.Info("resolution failed", "errors", len(errors.Split(err)))
		return "", err
	}
	rec.RecordRouter(r)

	raw, err := firewall.Render(r)
	if err != nil {
		return "", err
	}
	ruleset := firewall.Normalize(raw)
	rec.RecordRuleset(ruleset)
	log.Info("ruleset generated", "lines", strings.Count(ruleset, "\n")+1)
	return ruleset, nil
}
