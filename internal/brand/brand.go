// Package brand provides the product identity, loaded from brand.json at
// compile time via go:embed, and build version information.
package brand

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed brand.json
var brandJSON []byte

// Brand holds all branding information
type Brand struct {
	Name               string `json:"name"`
	LowerName          string `json:"lowerName"`
	Vendor             string `json:"vendor"`
	Repository         string `json:"repository"`
	Description        string `json:"description"`
	Tagline            string `json:"tagline"`
	ConfigEnvPrefix    string `json:"configEnvPrefix"`
	DefaultConfigDir   string `json:"defaultConfigDir"`
	DefaultRulesetPath string `json:"defaultRulesetPath"`
	BinaryName         string `json:"binaryName"`
	EnvFileName        string `json:"envFileName"`
	MetricsNamespace   string `json:"metricsNamespace"`
	License            string `json:"license"`
}

func init() {
	var b Brand
	if err := json.Unmarshal(brandJSON, &b); err != nil {
		panic("failed to parse brand.json: " + err.Error())
	}

	Name = b.Name
	LowerName = b.LowerName
	Vendor = b.Vendor
	Repository = b.Repository
	Description = b.Description
	Tagline = b.Tagline
	ConfigEnvPrefix = b.ConfigEnvPrefix
	DefaultConfigDir = b.DefaultConfigDir
	DefaultRulesetPath = b.DefaultRulesetPath
	BinaryName = b.BinaryName
	EnvFileName = b.EnvFileName
	MetricsNamespace = b.MetricsNamespace
	License = b.License
}

var (
	Name               string
	LowerName          string
	Vendor             string
	Repository         string
	Description        string
	Tagline            string
	ConfigEnvPrefix    string
	DefaultConfigDir   string
	DefaultRulesetPath string
	BinaryName         string
	EnvFileName        string
	MetricsNamespace   string
	License            string

	// Version is set at build time via -ldflags
	Version   = "dev"
	GitCommit = "unknown"
)

// VersionString returns "<name> <version> (<commit>)".
func VersionString() string {
	return fmt.Sprintf("%s %s (%s)", Name, Version, GitCommit)
}

// EnvVar returns the name of a tool setting variable, e.g. EnvVar("CONFIG_DIR")
// is NIFTY_FILTER_CONFIG_DIR.
func EnvVar(suffix string) string {
	return ConfigEnvPrefix + "_" + suffix
}

// GetConfigDir returns the config directory, checking env vars first.
// Priority: NIFTY_FILTER_CONFIG_DIR > DefaultConfigDir
func GetConfigDir() string {
	if dir := os.Getenv(EnvVar("CONFIG_DIR")); dir != "" {
		return dir
	}
	return DefaultConfigDir
}

// GetEnvFilePath returns the conventional location of the router env file.
func GetEnvFilePath() string {
	return filepath.Join(GetConfigDir(), EnvFileName)
}

// GetRulesetPath returns the installed ruleset path, checking env vars first.
// Priority: NIFTY_FILTER_RULESET > DefaultRulesetPath
func GetRulesetPath() string {
	if path := os.Getenv(EnvVar("RULESET")); path != "" {
		return path
	}
	return DefaultRulesetPath
}
