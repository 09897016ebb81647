// Package shell provides the process runner adapter.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// PipeGrace is how long output is still drained after cancellation before the
// pipe is released, even if a descendant of the command still holds it.
const PipeGrace = 2 * time.Second

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger  ports.Logger
	console io.Writer
}

// NewRunner creates a Runner that echoes command output to console.
func NewRunner(logger ports.Logger, console io.Writer) *Runner {
	if console == nil {
		console = io.Discard
	}
	return &Runner{
		logger:  logger,
		console: console,
	}
}

// Run executes the command with stderr merged into stdout.
// It merges environments with the following priority (low to high):
// 1. os.Environ() (System base)
// 2. cmd.Env (Project overrides)
//
// Output is echoed to the console, and to the vertex carried by ctx if there is one,
// as it arrives. The full text is returned in the result and, on a non-zero exit,
// in the *domain.ProcessFailure wrapped by the returned error.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error) {
	if len(cmd.Args) == 0 {
		return domain.ProcessResult{}, domain.ErrEmptyCommand
	}

	name := cmd.Args[0]
	args := cmd.Args[1:]
	env := Environ(cmd.Env)

	// Resolve the executable against the merged PATH so project overrides apply.
	executable := name
	if lp, err := LookPath(name, env, cmd.Dir); err == nil {
		executable = lp
	}

	c := exec.CommandContext(ctx, executable, args...) //nolint:gosec // command comes from the build plan

	// exec.CommandContext sets Args[0] to the executable path.
	// We want to preserve the original name as invoked.
	if len(c.Args) > 0 {
		c.Args[0] = name
	}
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	c.Env = env
	isolate(c)

	stdout, err := c.StdoutPipe()
	if err != nil {
		return domain.ProcessResult{}, zerr.With(zerr.Wrap(err, "failed to open output pipe"), "command", name)
	}
	// Same writer for both streams: exec hands the child one descriptor.
	c.Stderr = c.Stdout

	r.logger.Debug("starting process", "command", cmd.String(), "dir", c.Dir)

	if err := c.Start(); err != nil {
		_ = stdout.Close()
		err = zerr.With(zerr.Wrap(err, "failed to start process"), "command", name)
		return domain.ProcessResult{ExitCode: -1}, zerr.With(err, "exit_code", -1)
	}

	// Release the pipe once cancellation had time to take the process tree down.
	stopRelease := context.AfterFunc(ctx, func() {
		time.AfterFunc(PipeGrace, func() { _ = stdout.Close() })
	})
	defer stopRelease()

	sink := r.console
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		sink = io.MultiWriter(sink, vertex.Stdout())
	}

	var captured strings.Builder
	var readErr error
	for chunk, err := range chunks(stdout) {
		if err != nil {
			readErr = err
			break
		}
		_, _ = io.WriteString(sink, chunk)
		captured.WriteString(chunk)
	}
	if readErr != nil {
		// Release the pipe so a child still writing gets EPIPE instead of blocking Wait.
		_ = stdout.Close()
	}

	waitErr := c.Wait()
	result := domain.ProcessResult{Output: captured.String()}

	if waitErr != nil && ctx.Err() != nil {
		result.ExitCode = -1
		return result, zerr.With(zerr.Wrap(ctx.Err(), "process interrupted"), "command", name)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			result.ExitCode = -1
			return result, zerr.With(zerr.Wrap(waitErr, "process did not complete"), "command", name)
		}
		result.ExitCode = exitErr.ExitCode()
		failure := &domain.ProcessFailure{ExitCode: result.ExitCode, Output: result.Output}
		return result, zerr.With(zerr.With(failure, "command", name), "exit_code", result.ExitCode)
	}

	if readErr != nil {
		return result, zerr.With(zerr.Wrap(readErr, "failed to read process output"), "command", name)
	}

	return result, nil
}

// chunks yields r line by line, keeping line terminators. A trailing partial line is
// yielded at EOF. Invalid UTF-8 is replaced so diagnostics stay printable.
func chunks(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				if !yield(strings.ToValidUTF8(line, "\uFFFD"), nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}
				return
			}
		}
	}
}
