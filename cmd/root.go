// Package cmd implements the nifty-filter CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"nifty-filter/internal/brand"
	"nifty-filter/internal/errors"
	"nifty-filter/internal/i18n"
	"nifty-filter/internal/logging"
)

// Process hooks, replaced in tests.
var (
	environ = os.Environ
	getenv  = os.Getenv
)

// errSilent marks a failure whose report was already written.
var errSilent = errors.New(errors.KindUnknown, "silent failure")

type rootOptions struct {
	envFile   string
	ignoreEnv bool
	verbose   bool
	debug     bool
	logJSON   bool
}

// NewRootCmd builds the command tree. Running the root command with no
// subcommand generates the ruleset.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	gen := &generateOptions{}

	root := &cobra.Command{
		Use:   brand.BinaryName,
		Short: brand.Description,
		Long: brand.Name + " renders an nftables ruleset for a two-zone (LAN/WAN) router\n" +
			"from named inputs taken from the environment or an env file.",
		Version:       brand.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts, gen)
		},
	}
	root.SetVersionTemplate(brand.VersionString() + "\n")

	pf := root.PersistentFlags()
	pf.StringVar(&opts.envFile, "env-file", "", "seed inputs from a file (.env, .hcl, .yaml), conventionally "+brand.GetEnvFilePath())
	pf.BoolVar(&opts.ignoreEnv, "ignore-env", false, "ignore the process environment and read only --env-file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	pf.BoolVar(&opts.debug, "debug", false, "log debug detail to stderr")
	pf.BoolVar(&opts.logJSON, "log-json", false, "log as JSON")

	addGenerateFlags(root, gen)

	root.AddCommand(
		newGenerateCmd(opts),
		newCheckCmd(opts),
		newDiffCmd(opts),
		newInfoCmd(),
		newStatusCmd(),
		newTUICmd(opts),
		newInitCmd(),
	)
	return root
}

// setup configures logging and the message printer for one run.
func setup(cmd *cobra.Command, opts *rootOptions) {
	logger := logging.New(logging.Config{
		Level:  logging.LevelFor(opts.verbose, opts.debug),
		Output: cmd.ErrOrStderr(),
		JSON:   opts.logJSON,
	})
	logger, _ = logger.WithRun()
	logging.SetDefault(logger)
	logging.Debug("starting", "command", cmd.Name(), "version", brand.Version)

	cmd.SetContext(i18n.WithPrinter(cmd.Context(), i18n.NewCLIPrinter(getenv)))
}

func printer(cmd *cobra.Command) *message.Printer {
	return i18n.GetPrinter(cmd.Context())
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		reportError(root.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// reportError writes one "Error: " line per failure.
func reportError(w io.Writer, err error) {
	if errors.Is(err, errSilent) {
		return
	}
	for _, e := range errors.Split(err) {
		fmt.Fprintf(w, "Error: %s\n", e)
	}
}
