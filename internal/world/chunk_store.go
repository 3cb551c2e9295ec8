package world

import (
	"sync"
)

// ChunkCoord identifies a chunk column.
type ChunkCoord struct {
	X, Z int
}

// ChunkStore manages the storage and retrieval of chunks.
type ChunkStore struct {
	chunks map[ChunkCoord]*Chunk
	mu     sync.RWMutex
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// GetChunk returns the chunk at the specified chunk coordinates.
// If the chunk doesn't exist and create is true, it will be created empty.
func (cs *ChunkStore) GetChunk(chunkX, chunkZ int, create bool) *Chunk {
	coord := ChunkCoord{X: chunkX, Z: chunkZ}
	cs.mu.RLock()
	chunk, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	if !exists && create {
		cs.mu.Lock()
		defer cs.mu.Unlock()
		// Double-check locking: another goroutine might have created it while we were waiting for the lock
		if existing, ok := cs.chunks[coord]; ok {
			return existing
		}
		chunk = NewChunk(chunkX, chunkZ)
		cs.chunks[coord] = chunk
	}
	return chunk
}

// GetChunkFromBlockCoords returns the chunk containing the block at the specified world coordinates.
func (cs *ChunkStore) GetChunkFromBlockCoords(x, z int, create bool) *Chunk {
	return cs.GetChunk(floorDiv(x, ChunkSizeX), floorDiv(z, ChunkSizeZ), create)
}

// Get returns the block state at the specified world coordinates.
func (cs *ChunkStore) Get(p BlockPos) BlockState {
	chunk := cs.GetChunkFromBlockCoords(p.X, p.Z, false)
	if chunk == nil {
		return Air
	}
	return chunk.GetState(mod(p.X, ChunkSizeX), p.Y, mod(p.Z, ChunkSizeZ))
}

// IsAir checks if the block at the specified world coordinates is air.
func (cs *ChunkStore) IsAir(p BlockPos) bool {
	return cs.Get(p).IsAir()
}

// Set stores the block state and reports the previous state and whether it changed.
// Positions outside the vertical range are ignored.
func (cs *ChunkStore) Set(p BlockPos, s BlockState) (BlockState, bool) {
	if p.Y < 0 || p.Y >= ChunkSizeY {
		return Air, false
	}
	chunk := cs.GetChunkFromBlockCoords(p.X, p.Z, !s.IsAir())
	if chunk == nil {
		return Air, false
	}
	return chunk.SetState(mod(p.X, ChunkSizeX), p.Y, mod(p.Z, ChunkSizeZ), s)
}

// Each calls fn for every loaded chunk. fn must not load chunks itself.
func (cs *ChunkStore) Each(fn func(*Chunk)) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	for _, c := range cs.chunks {
		fn(c)
	}
}

// Len returns the number of loaded chunk columns.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
