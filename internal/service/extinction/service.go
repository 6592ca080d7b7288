package extinction

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/metapop/internal/config"
	"github.com/katalvlaran/metapop/internal/logger"
	"github.com/katalvlaran/metapop/markov"
	"github.com/katalvlaran/metapop/report"
)

// Run validates cfg, builds and checks the transition matrix, propagates the
// initial full-occupancy distribution for cfg.Years and writes the report to w.
// Any failure aborts the run; there is no partial output.
func Run(ctx context.Context, w io.Writer, cfg *config.Config) error {
	ctx = logger.WithName(ctx, "extinction")

	if err := config.Validate(cfg); err != nil {
		logger.ErrorKV(ctx, "Invalid configuration", "error", err)
		return fmt.Errorf("validate configuration: %w", err)
	}

	// Cancellation is only honoured before the computation starts.
	if err := ctx.Err(); err != nil {
		return err
	}

	// Validate has already accepted every value below.
	params, err := markov.NewParams(cfg.SmallExtinction, cfg.LargeExtinction, cfg.Recolonization)
	if err != nil {
		return fmt.Errorf("model parameters: %w", err)
	}

	method, err := markov.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Building transition matrix",
		"e_s", params.SmallExtinction,
		"e_l", params.LargeExtinction,
		"r", params.Recolonization,
		"tolerance", cfg.Tolerance,
	)

	chain, err := markov.NewChain(params, markov.WithTolerance(cfg.Tolerance), markov.WithMethod(method))
	if err != nil {
		logger.ErrorKV(ctx, "Transition matrix rejected", "error", err)
		return fmt.Errorf("build chain: %w", err)
	}

	logger.DebugKV(ctx, "Transition matrix", "matrix", chain.Matrix().String())

	dist, err := chain.Distribution(cfg.Years)
	if err != nil {
		logger.ErrorKV(ctx, "Propagation failed", "error", err)
		return fmt.Errorf("propagate: %w", err)
	}

	logger.InfoKV(ctx, "Propagated distribution",
		"years", cfg.Years,
		"method", string(method),
		"distribution", dist.String(),
	)

	if err = report.Write(w, report.New(dist, cfg.Years), format); err != nil {
		return err
	}

	if !cfg.Curve {
		return nil
	}

	curve, err := chain.ExtinctionCurve(cfg.Years)
	if err != nil {
		return fmt.Errorf("extinction curve: %w", err)
	}

	return report.WriteCurve(w, curve)
}
