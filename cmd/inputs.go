package cmd

import (
	"nifty-filter/internal/brand"
	"nifty-filter/internal/config"
	"nifty-filter/internal/errors"
	"nifty-filter/internal/logging"
	"nifty-filter/internal/validation"
)

// loadInputs assembles the named inputs for one run. The process
// environment overrides the seed file unless environment input is ignored.
// Only the known field names are kept.
func loadInputs(opts *rootOptions) (config.Inputs, error) {
	log := logging.WithComponent("inputs")

	seed := config.NewInputs(nil)
	if opts.envFile != "" {
		in, err := config.LoadFile(opts.envFile)
		if err != nil {
			return config.Inputs{}, err
		}
		log.Info("loaded seed file", "path", opts.envFile, "inputs", in.Len())
		seed = in
	}

	ignore, err := ignoreEnv(opts)
	if err != nil {
		return config.Inputs{}, err
	}

	in := seed
	if !ignore {
		in = seed.Merge(config.FromEnviron(environ()))
	}
	in = in.Only(config.FieldNames()...)
	log.Debug("inputs assembled", "present", in.Names(), "ignore_env", ignore)
	return in, nil
}

// ignoreEnv reports whether the environment should be skipped, from the
// flag or the NIFTY_FILTER_IGNORE_ENV variable.
func ignoreEnv(opts *rootOptions) (bool, error) {
	if opts.ignoreEnv {
		return true, nil
	}
	name := brand.EnvVar("IGNORE_ENV")
	raw := getenv(name)
	if raw == "" {
		return false, nil
	}
	v, err := validation.ParseBool(raw)
	if err != nil {
		return false, errors.InvalidFormat(name, raw, err)
	}
	return v, nil
}
