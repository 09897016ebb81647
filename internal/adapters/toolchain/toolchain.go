// Package toolchain locates and probes build tools on the project PATH.
package toolchain

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Toolchain = (*Toolchain)(nil)

// DefaultProbeTimeout bounds a single version query.
const DefaultProbeTimeout = 5 * time.Second

// Toolchain implements ports.Toolchain with the same environment merge and PATH
// search the shell runner applies to issued commands.
type Toolchain struct {
	logger       ports.Logger
	probeTimeout time.Duration
}

// New creates a Toolchain.
func New(logger ports.Logger) *Toolchain {
	return &Toolchain{
		logger:       logger,
		probeTimeout: DefaultProbeTimeout,
	}
}

// LookPath returns the location of the named tool within scope.
func (t *Toolchain) LookPath(name string, scope domain.ToolScope) (string, error) {
	path, err := shell.LookPath(name, shell.Environ(scope.Env), scope.Dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrToolNotFound, "Required tool '"+name+"' not found in PATH"), "tool", name)
	}
	return path, nil
}

// Probe locates every named tool and queries its version concurrently.
// A missing tool or a failing version query is reported in the result, not as an error;
// only cancellation of ctx fails the probe.
func (t *Toolchain) Probe(ctx context.Context, names []string, scope domain.ToolScope) ([]domain.ToolStatus, error) {
	statuses := make([]domain.ToolStatus, len(names))
	env := shell.Environ(scope.Env)

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, name := range names {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			status := domain.ToolStatus{Name: name}
			path, err := shell.LookPath(name, env, scope.Dir)
			if err != nil {
				statuses[i] = status
				return nil
			}
			status.Path = path
			status.Found = true
			status.Version = t.version(groupCtx, path, env, scope.Dir)
			statuses[i] = status
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "tool probe interrupted")
	}
	return statuses, nil
}

// version runs "<tool> --version" and returns the first non-empty line of its output.
func (t *Toolchain) version(ctx context.Context, path string, env []string, dir string) string {
	ctx, cancel := context.WithTimeout(ctx, t.probeTimeout)
	defer cancel()

	//nolint:gosec // path was resolved by LookPath
	c := exec.CommandContext(ctx, path, "--version")
	c.Env = env
	c.Dir = dir
	out, err := c.CombinedOutput()
	if err != nil {
		t.logger.Debug("version query failed", "tool", path, "error", err)
		return ""
	}
	return firstLine(out)
}

func firstLine(out []byte) string {
	for line := range bytes.Lines(out) {
		if s := strings.TrimSpace(string(line)); s != "" {
			return s
		}
	}
	return ""
}
