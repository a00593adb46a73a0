package shading

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/lumen-go/engine/vertex"
	"github.com/go-gl/mathgl/mgl32"
)

// NewComputePool creates the worker pool used by the batch evaluation
// helpers, sized to leave one CPU for the host. Workers are reused across
// batches so per-frame submission has no goroutine spawn overhead.
//
// Returns:
//   - worker.DynamicWorkerPool: the compute pool
func NewComputePool() worker.DynamicWorkerPool {
	workers := max(runtime.NumCPU()-1, 1)
	// Queue size of 256 accommodates typical batch chunk counts with headroom.
	return worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)
}

// ShadeBuffer evaluates the draw's shading model for every fragment in the
// batch, writing one RGBA color per fragment. Fragments are independent pure
// evaluations, so the batch is chunked across the pool with no
// synchronization beyond read-only sharing of the draw data. Results are
// identical to calling Shade sequentially; only summation order within one
// fragment is fixed, never ordering between fragments.
//
// Parameters:
//   - d: the per-draw shading configuration
//   - in: the fragment interpolants to shade
//   - out: the destination colors, must be at least len(in)
//   - pool: the compute pool to run on
func ShadeBuffer(d *Draw, in []vertex.Interpolants, out []mgl32.Vec4, pool worker.DynamicWorkerPool) {
	forEachChunk(len(in), pool, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = d.Shade(in[i])
		}
	})
}

// ProjectBuffer runs the vertex projection stage for every vertex in the
// batch, writing one interpolant record per vertex.
//
// Parameters:
//   - p: the per-draw projector
//   - vertices: the vertices to project
//   - out: the destination interpolants, must be at least len(vertices)
//   - pool: the compute pool to run on
func ProjectBuffer(p vertex.Projector, vertices []vertex.Vertex, out []vertex.Interpolants, pool worker.DynamicWorkerPool) {
	forEachChunk(len(vertices), pool, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = p.Project(vertices[i])
		}
	})
}

// forEachChunk splits [0, n) into contiguous chunks and submits one pool
// task per chunk. A WaitGroup provides the batch barrier since pool.Wait()
// blocks until workers idle-exit, which is unsuitable for frame-rate
// workloads.
func forEachChunk(n int, pool worker.DynamicWorkerPool, fn func(start, end int)) {
	if n == 0 {
		return
	}

	// Cap chunk count well below the pool queue size so submission never
	// stalls behind a full queue.
	chunks := min(max(runtime.NumCPU()*4, 1), 128)
	if chunks > n {
		chunks = n
	}
	chunkSize := (n + chunks - 1) / chunks

	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		s, e := start, end // capture for closure
		id := taskID
		taskID++
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				fn(s, e)
				return nil, nil
			},
		})
	}
	wg.Wait()
}
