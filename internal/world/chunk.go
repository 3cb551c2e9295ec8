package world

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16

	// Section dimensions
	SectionHeight = 16
	NumSections   = ChunkSizeY / SectionHeight
	SectionVolume = ChunkSizeX * SectionHeight * ChunkSizeZ
)

// Section represents a 16x16x16 sub-volume of a chunk
type Section struct {
	states   []BlockState
	nonEmpty int
}

// Chunk represents a 16x256x16 column of the world
type Chunk struct {
	X, Z     int
	sections [NumSections]*Section
	modCount uint64
}

// NewChunk creates a new chunk at the specified chunk coordinates
func NewChunk(x, z int) *Chunk {
	return &Chunk{X: x, Z: z}
}

// indexInSection converts local section coordinates (x, localY, z) → flat index
func indexInSection(x, localY, z int) int {
	return x*SectionHeight*ChunkSizeZ + localY*ChunkSizeZ + z
}

func inChunk(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// GetState returns the block state at the specified local coordinates
func (c *Chunk) GetState(x, y, z int) BlockState {
	if !inChunk(x, y, z) {
		return Air
	}
	sec := c.sections[y/SectionHeight]
	if sec == nil {
		return Air
	}
	return sec.states[indexInSection(x, y%SectionHeight, z)]
}

// SetState sets the block state at the specified local coordinates and
// returns the previous state and whether anything changed.
func (c *Chunk) SetState(x, y, z int, s BlockState) (BlockState, bool) {
	if !inChunk(x, y, z) {
		return Air, false
	}
	secIdx := y / SectionHeight
	idx := indexInSection(x, y%SectionHeight, z)
	sec := c.sections[secIdx]

	if sec == nil {
		if s.IsAir() {
			return Air, false
		}
		sec = &Section{states: make([]BlockState, SectionVolume)}
		c.sections[secIdx] = sec
	}

	old := sec.states[idx]
	if old == s {
		return old, false
	}
	sec.states[idx] = s
	switch {
	case old.IsAir() && !s.IsAir():
		sec.nonEmpty++
	case !old.IsAir() && s.IsAir():
		sec.nonEmpty--
	}
	// drop sections that became empty again
	if sec.nonEmpty <= 0 {
		c.sections[secIdx] = nil
	}
	c.modCount++
	return old, true
}

// IsAir checks if the block at the specified local coordinates is air
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetState(x, y, z).IsAir()
}

// ModCount increases on every block change in the chunk.
func (c *Chunk) ModCount() uint64 {
	return c.modCount
}

// NonAirCount returns how many non-air blocks the chunk holds.
func (c *Chunk) NonAirCount() int {
	n := 0
	for _, sec := range c.sections {
		if sec != nil {
			n += sec.nonEmpty
		}
	}
	return n
}
