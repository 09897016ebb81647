// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock tape. Each orchestrator stage
// becomes one vertex; stage timings are also reported to the logger.
type Recorder struct {
	tape   *progrock.Tape
	rec    *progrock.Recorder
	logger ports.Logger
	now    func() time.Time
}

// New creates a new Recorder with a fresh tape.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(progrock.NewTape(), logger)
}

// NewRecorder creates a new Recorder writing to the given tape.
func NewRecorder(tape *progrock.Tape, logger ports.Logger) *Recorder {
	return &Recorder{
		tape:   tape,
		rec:    progrock.NewRecorder(tape),
		logger: logger,
		now:    time.Now,
	}
}

// Record starts recording a new vertex and returns a context carrying it.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	vertex := &Vertex{
		vertex:  r.rec.Vertex(digest.FromString(name), name),
		name:    name,
		logger:  r.logger,
		now:     r.now,
		started: r.now(),
	}
	r.logger.Debug("stage started", "stage", name)
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Timings reads the stages back from the tape in start order. A stage still
// running reports the time elapsed so far.
func (r *Recorder) Timings() []domain.StageTiming {
	vertices := r.tape.Vertices()
	timings := make([]domain.StageTiming, 0, len(vertices))
	for _, v := range vertices {
		timings = append(timings, domain.StageTiming{
			Stage:    v.GetName(),
			Duration: v.Duration(),
			Failed:   v.Error != nil,
			Canceled: v.GetCanceled(),
		})
	}
	return timings
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.tape.Close()
}
