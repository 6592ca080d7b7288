package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metapop/markov"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRoot_Defaults(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	require.Equal(t, "Probability species permanently lost by year 50: 0.761328 (76.1328%)\n", out)
}

func TestRoot_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metapop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("years: 10\nrecolonization: 0.5\n"), 0o600))

	out, err := run(t, "--config", path, "--years", "0")
	require.NoError(t, err)
	require.Equal(t, "Probability species permanently lost by year 0: 0.000000 (0.0000%)\n", out)
}

func TestRoot_EnvBetweenFileAndFlags(t *testing.T) {
	t.Setenv("METAPOP_YEARS", "1")

	out, err := run(t)
	require.NoError(t, err)
	require.Equal(t, "Probability species permanently lost by year 1: 0.003900 (0.3900%)\n", out)

	out, err = run(t, "-t", "2")
	require.NoError(t, err)
	require.Equal(t, "Probability species permanently lost by year 2: 0.014224 (1.4224%)\n", out)
}

func TestRoot_InvalidParameter(t *testing.T) {
	out, err := run(t, "--large-extinction=-0.1")
	require.ErrorIs(t, err, markov.ErrInvalidParameter)
	require.Empty(t, out)
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := run(t, "extra")
	require.Error(t, err)
}

func TestRoot_Version(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "version: ")
}
