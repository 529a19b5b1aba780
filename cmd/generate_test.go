package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nifty-filter/internal/errors"
)

func TestGenerate_Stdout(t *testing.T) {
	for _, args := range [][]string{nil, {"generate"}} {
		out, _, err := execute(t, routerEnv, args...)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(out, "#!/usr/sbin/nft -f"))
		assert.True(t, strings.HasSuffix(out, "}\n"), "output should end with one newline")
		assert.False(t, strings.HasSuffix(out, "\n\n"))
		assert.Contains(t, out, `iifname "eth1"`)
		assert.Contains(t, out, "192.168.10.0/24")
	}
}

func TestGenerate_MissingInputs(t *testing.T) {
	out, _, err := execute(t, []string{"PATH=/usr/bin"})
	require.Error(t, err)
	assert.Empty(t, out)

	var msgs []string
	for _, e := range errors.Split(err) {
		msgs = append(msgs, e.Error())
	}
	assert.Equal(t, []string{
		"INTERFACE_LAN is not set",
		"INTERFACE_WAN is not set",
		"SUBNET_LAN is not set",
	}, msgs)
}

func TestGenerate_InvalidAndMissing(t *testing.T) {
	env := append([]string{"TCP_ACCEPT_WAN=22,0", "CHAIN_INPUT_POLICY=allow"}, routerEnv[:2]...)
	_, _, err := execute(t, env)
	require.Error(t, err)

	errs := errors.Split(err)
	require.Len(t, errs, 3)
	assert.Equal(t, "SUBNET_LAN", errors.Field(errs[0]))
	assert.Equal(t, "TCP_ACCEPT_WAN", errors.Field(errs[1]))
	assert.Equal(t, "CHAIN_INPUT_POLICY", errors.Field(errs[2]))
}

func TestGenerate_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "router.env")
	seed := "INTERFACE_LAN=lan0\nINTERFACE_WAN=wan0\nSUBNET_LAN=10.0.0.0/8\n"
	require.NoError(t, os.WriteFile(envFile, []byte(seed), 0o644))

	t.Run("environment overrides file", func(t *testing.T) {
		out, _, err := execute(t, []string{"INTERFACE_LAN=eth9"}, "--env-file", envFile)
		require.NoError(t, err)
		assert.Contains(t, out, `iifname "eth9"`)
		assert.Contains(t, out, `iifname "wan0"`)
	})

	t.Run("ignore-env flag", func(t *testing.T) {
		out, _, err := execute(t, []string{"INTERFACE_LAN=eth9"}, "--env-file", envFile, "--ignore-env")
		require.NoError(t, err)
		assert.Contains(t, out, `iifname "lan0"`)
		assert.NotContains(t, out, "eth9")
	})

	t.Run("ignore-env variable", func(t *testing.T) {
		out, _, err := execute(t, []string{"INTERFACE_LAN=eth9", "NIFTY_FILTER_IGNORE_ENV=true"}, "--env-file", envFile)
		require.NoError(t, err)
		assert.Contains(t, out, `iifname "lan0"`)
	})

	t.Run("bad ignore-env variable", func(t *testing.T) {
		_, _, err := execute(t, []string{"NIFTY_FILTER_IGNORE_ENV=maybe"}, "--env-file", envFile)
		require.Error(t, err)
		assert.Equal(t, "NIFTY_FILTER_IGNORE_ENV", errors.Field(err))
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		_, _, err := execute(t, routerEnv, "--env-file", filepath.Join(dir, "nope.env"))
		require.Error(t, err)
		assert.Equal(t, errors.KindIO, errors.GetKind(err))
	})
}

func TestGenerate_OutputFiles(t *testing.T) {
	dir := t.TempDir()
	rules := filepath.Join(dir, "nftables.conf")
	prom := filepath.Join(dir, "nifty.prom")

	out, _, err := execute(t, routerEnv, "generate", "-o", rules, "--metrics-file", prom)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote ruleset to "+rules)

	data, err := os.ReadFile(rules)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "#!/usr/sbin/nft -f"))

	stdout, _, err := execute(t, routerEnv)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(data))

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "niftyfilter_ruleset_lines")
	assert.Contains(t, string(metrics), "niftyfilter_resolution_errors 0")
}

func TestGenerate_MetricsOnFailure(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "nifty.prom")

	_, _, err := execute(t, nil, "--metrics-file", prom)
	require.Error(t, err)

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "niftyfilter_resolution_errors 3")
}
