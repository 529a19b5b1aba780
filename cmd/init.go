package cmd

import (
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"nifty-filter/internal/brand"
	"nifty-filter/internal/config"
	"nifty-filter/internal/errors"
	"nifty-filter/internal/i18n"
)

func newInitCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an env file interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := initForm(config.Fields())
			if err != nil {
				return err
			}
			if err := w.form.RunWithContext(cmd.Context()); err != nil {
				return errors.Wrap(err, errors.KindInternal, "setup aborted")
			}
			if err := writeEnvFile(output, w.env()); err != nil {
				return err
			}
			printer(cmd).Fprintf(cmd.OutOrStdout(), i18n.MsgWroteEnvFile, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", brand.GetEnvFilePath(), "env file to write")
	return cmd
}

type wizard struct {
	form    *huh.Form
	fields  []config.Field
	answers []string
}

// initForm builds one input per field, prefilled with the field's default.
func initForm(fields []config.Field) (*wizard, error) {
	if len(fields) == 0 {
		return nil, errors.New(errors.KindInternal, "no fields to prompt for")
	}
	w := &wizard{fields: fields, answers: make([]string, len(fields))}

	var inputs []huh.Field
	for i, f := range fields {
		w.answers[i] = f.Default
		title := f.Name
		if f.Required {
			title += " (required)"
		}
		inputs = append(inputs, huh.NewInput().
			Title(title).
			Description(f.Description).
			Value(&w.answers[i]).
			Validate(fieldValidator(f)))
	}
	w.form = huh.NewForm(huh.NewGroup(inputs...)).WithTheme(huh.ThemeBase16())
	return w, nil
}

func (w *wizard) env() gotenv.Env {
	env := make(gotenv.Env, len(w.fields))
	for i, f := range w.fields {
		env[f.Name] = w.answers[i]
	}
	return env
}

func fieldValidator(f config.Field) func(string) error {
	return func(s string) error {
		if s == "" && f.Required {
			return errors.MissingInput(f.Name)
		}
		return f.Validate(s)
	}
}

func writeEnvFile(path string, env gotenv.Env) error {
	if err := gotenv.Write(env, path); err != nil {
		return errors.Wrapf(err, errors.KindIO, "failed to write %s", path)
	}
	return nil
}
