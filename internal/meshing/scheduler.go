package meshing

import (
	"quadcraft/internal/world"
)

// Uploader receives finished vertex lists, typically a GPU buffer.
type Uploader interface {
	Upload(vertices []Vertex)
}

// Scheduler keeps a chunk's uploaded mesh in step with its contents. With
// a nil pool it rebuilds synchronously; otherwise it meshes snapshots in
// the background and drops results for versions that have since changed.
type Scheduler struct {
	chunk    *world.Chunk
	mesher   *Mesher
	pool     *WorkerPool
	uploader Uploader

	results chan MeshResult
	pending bool
}

// NewScheduler creates a scheduler. mesher is used when pool is nil.
func NewScheduler(c *world.Chunk, mesher *Mesher, pool *WorkerPool, up Uploader) *Scheduler {
	return &Scheduler{
		chunk:    c,
		mesher:   mesher,
		pool:     pool,
		uploader: up,
		results:  make(chan MeshResult, 1),
	}
}

// Pending reports whether a background job is outstanding.
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Update is called once per frame from the thread that owns the chunk.
// It returns true when a new mesh was uploaded. Meshing errors are
// returned as-is; the chunk stays dirty.
func (s *Scheduler) Update() (bool, error) {
	if s.pool == nil {
		verts, rebuilt, err := s.mesher.Rebuild(s.chunk)
		if err != nil || !rebuilt {
			return false, err
		}
		s.uploader.Upload(verts)
		return true, nil
	}

	uploaded, err := s.drain()
	if err != nil {
		return uploaded, err
	}

	if s.chunk.IsDirty() && !s.pending {
		s.pending = s.pool.SubmitChunk(s.chunk, s.results)
	}
	return uploaded, nil
}

func (s *Scheduler) drain() (bool, error) {
	select {
	case res := <-s.results:
		s.pending = false
		if res.Error != nil {
			return false, res.Error
		}
		if res.Version != s.chunk.Version() {
			// Edited while meshing; the next Update resubmits.
			return false, nil
		}
		s.uploader.Upload(res.Vertices)
		s.chunk.SetClean()
		return true, nil
	default:
		return false, nil
	}
}
