package extinction

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/metapop/internal/config"
	"github.com/katalvlaran/metapop/internal/logger"
	"github.com/katalvlaran/metapop/markov"
)

func observed(t *testing.T) (context.Context, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)

	return logger.ToContext(context.Background(), zap.New(core).Sugar()), logs
}

// TestRun_ReferenceScenario prints the single extinction line for the defaults.
func TestRun_ReferenceScenario(t *testing.T) {
	t.Parallel()

	ctx, logs := observed(t)
	var out bytes.Buffer
	require.NoError(t, Run(ctx, &out, config.Default()))
	require.Equal(t, "Probability species permanently lost by year 50: 0.761328 (76.1328%)\n", out.String())

	require.Equal(t, 1, logs.FilterMessage("Transition matrix").Len())
	require.Equal(t, 1, logs.FilterMessage("Propagated distribution").Len())
}

// TestRun_SquaringMatchesIterate: both methods print the same line.
func TestRun_SquaringMatchesIterate(t *testing.T) {
	t.Parallel()

	ctx, _ := observed(t)
	cfg := config.Default()
	cfg.Method = string(markov.MethodSquaring)

	var out bytes.Buffer
	require.NoError(t, Run(ctx, &out, cfg))
	require.Equal(t, "Probability species permanently lost by year 50: 0.761328 (76.1328%)\n", out.String())
}

func TestRun_YAMLWithCurve(t *testing.T) {
	t.Parallel()

	ctx, _ := observed(t)
	cfg := config.Default()
	cfg.Format = "yaml"
	cfg.Years = 2
	cfg.Curve = true

	var out bytes.Buffer
	require.NoError(t, Run(ctx, &out, cfg))
	text := out.String()
	require.True(t, strings.HasPrefix(text, "years: 2\n"), text)
	require.Contains(t, text, "year  extinct\n   0  0.000000\n   1  0.003900\n   2  0.014224\n")
}

func TestRun_InvalidParameter(t *testing.T) {
	t.Parallel()

	ctx, logs := observed(t)
	cfg := config.Default()
	cfg.SmallExtinction = 1.3

	var out bytes.Buffer
	err := Run(ctx, &out, cfg)
	require.ErrorIs(t, err, markov.ErrInvalidParameter)
	require.Contains(t, err.Error(), "e_s=1.3")
	require.Empty(t, out.String())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	ctx, _ := observed(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	var out bytes.Buffer
	require.ErrorIs(t, Run(ctx, &out, config.Default()), context.Canceled)
	require.Empty(t, out.String())
}
