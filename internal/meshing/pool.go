package meshing

import (
	"context"
	"errors"
	"sync"

	"quadcraft/internal/world"
)

// ErrPoolClosed is returned for jobs submitted after Shutdown.
var ErrPoolClosed = errors.New("mesh worker pool is shut down")

// MeshJob represents a meshing job request. Chunk must be a snapshot that
// no other goroutine mutates; use SubmitChunk to take one.
type MeshJob struct {
	Chunk *world.Chunk
	// Result channel - will be sent the result when done
	ResultChan chan<- MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	// Version is the chunk version the vertices were built from.
	Version  uint64
	Vertices []Vertex // owned by the receiver
	Stats    Stats
	Error    error
}

// WorkerPool manages goroutines for mesh generation. Every worker owns a
// private Mesher, so results never share a buffer.
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new mesh worker pool. opts configure each
// worker's Mesher.
func NewWorkerPool(workers int, queueSize int, capacity int, opts ...Option) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	// Start worker goroutines
	for range workers {
		pool.wg.Add(1)
		go pool.worker(NewMesher(capacity, opts...))
	}

	return pool
}

// SubmitJob submits a mesh generation job to the pool
// Returns true if job was submitted successfully, false if queue is full
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false // Queue is full
	}
}

// SubmitJobBlocking submits a job and blocks until it's queued, ctx is
// done, or the pool shuts down.
func (p *WorkerPool) SubmitJobBlocking(ctx context.Context, job MeshJob) error {
	if p.ctx.Err() != nil {
		return ErrPoolClosed
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return ErrPoolClosed
	}
}

// SubmitChunk snapshots c and queues it. The caller must own c for the
// duration of the call.
func (p *WorkerPool) SubmitChunk(c *world.Chunk, results chan<- MeshResult) bool {
	return p.SubmitJob(MeshJob{Chunk: c.Snapshot(), ResultChan: results})
}

// worker is the worker goroutine that processes mesh jobs
func (p *WorkerPool) worker(m *Mesher) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := MeshResult{Version: job.Chunk.Version()}
			verts, err := m.Mesh(job.Chunk)
			if err != nil {
				result.Error = err
			} else {
				result.Vertices = append([]Vertex(nil), verts...)
				result.Stats = m.LastStats()
			}

			// Send result back
			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Queued jobs that
// have not started are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}
