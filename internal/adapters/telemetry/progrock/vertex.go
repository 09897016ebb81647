package progrock

import (
	"io"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/kiln/internal/core/ports"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex  *progrock.VertexRecorder
	name    string
	logger  ports.Logger
	now     func() time.Time
	started time.Time
	once    sync.Once
}

// Stdout returns a writer feeding the vertex log on the tape.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Complete marks the vertex as finished. Only the first call has an effect.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() {
		v.vertex.Done(err)
		elapsed := v.now().Sub(v.started)
		if err != nil {
			v.logger.Debug("stage failed", "stage", v.name, "duration", elapsed, "error", err)
			return
		}
		v.logger.Debug("stage finished", "stage", v.name, "duration", elapsed)
	})
}
