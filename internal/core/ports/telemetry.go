package ports

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work.
type Telemetry interface {
	// Record starts a vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Timings returns the recorded vertices in start order.
	Timings() []domain.StageTiming
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer to capture the output of the work.
	Stdout() io.Writer
	// Complete marks the vertex as finished (successfully or with an error).
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok && v != nil
}
