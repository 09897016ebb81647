// Package orchestrator drives a validated build plan through configure and build stages.
package orchestrator

import (
	"context"
	"errors"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator issues the commands of a build plan one at a time and stops at the
// first failure.
type Orchestrator struct {
	runner    ports.Runner
	reporter  ports.Reporter
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates an Orchestrator.
func New(
	runner ports.Runner,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		runner:    runner,
		reporter:  reporter,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run executes the plan. A failed configure step returns an error matching
// domain.ErrConfigureFailed, a failed build step one matching domain.ErrBuildFailed;
// both also carry the underlying *domain.ProcessFailure when the process ran.
// A plan that fails domain.BuildPlan.Check is rejected before any command is issued.
func (o *Orchestrator) Run(ctx context.Context, plan domain.BuildPlan, project domain.Project) error {
	if err := plan.Check(); err != nil {
		return err
	}

	for s := Next(domain.StageIdle, plan); !s.IsTerminal(); s = Next(s, plan) {
		if err := ctx.Err(); err != nil {
			return zerr.With(zerr.Wrap(err, "build interrupted"), "stage", s.String())
		}

		cmd, ok := CommandFor(s, plan, project)
		if !ok {
			continue
		}
		if err := o.runStage(ctx, s, plan, cmd); err != nil {
			return err
		}
	}

	o.reporter.Finished(plan)
	return nil
}

func (o *Orchestrator) runStage(ctx context.Context, s domain.Stage, plan domain.BuildPlan, cmd domain.Command) error {
	o.reporter.StageStarted(s, plan)
	o.logger.Debug("issuing command", "stage", s.String(), "command", cmd.String())

	stageCtx, vertex := o.telemetry.Record(ctx, s.String())
	_, err := o.runner.Run(stageCtx, cmd)
	vertex.Complete(err)

	if err != nil {
		o.reporter.StageFailed(s, plan, diagnostic(err))
		kind := domain.ErrBuildFailed
		if s == domain.StageConfiguring {
			kind = domain.ErrConfigureFailed
		}
		return zerr.With(errors.Join(kind, err), "stage", s.String())
	}

	o.reporter.StageSucceeded(s, plan)
	return nil
}

// diagnostic returns the captured output of a failed process, or the error text when
// the process never ran.
func diagnostic(err error) string {
	var failure *domain.ProcessFailure
	if errors.As(err, &failure) {
		return failure.Output
	}
	return err.Error()
}
