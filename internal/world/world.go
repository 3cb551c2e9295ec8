package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Block update flags passed to SetBlockState.
const (
	NotifyNeighbors = 1
	NotifyListeners = 2
	Redraw          = 8

	// NotifyAll is the usual flag set for gameplay block changes.
	NotifyAll = NotifyNeighbors | NotifyListeners
	// ReplaceFlags is used when a fluid is poured over whatever was there.
	ReplaceFlags = NotifyAll | Redraw
)

type ParticleKind int

const (
	ParticleLargeSmoke ParticleKind = iota
	// ParticleBlockCrack carries the state of the block that broke.
	ParticleBlockCrack
)

type Particle struct {
	Kind     ParticleKind
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	State    BlockState
}

// BlockChange is reported to listeners after every successful SetBlockState.
type BlockChange struct {
	Pos   BlockPos
	Old   BlockState
	New   BlockState
	Flags int
}

// Drop records the block a broken position left behind as an item drop.
type Drop struct {
	Pos     BlockPos
	State   BlockState
	Breaker string
}

// PlacerAware is implemented by block entities that remember the agent that placed them.
type PlacerAware interface {
	SetPlacer(placerID string)
}

// ChestEntity is the block entity of a chest.
type ChestEntity struct {
	Placer string
}

func (c *ChestEntity) SetPlacer(placerID string) {
	c.Placer = placerID
}

// World is the block world the agents act in.
type World struct {
	store     *ChunkStore
	dimension Dimension
	entities  map[BlockPos]any
	particles []Particle
	drops     []Drop
	listeners []func(BlockChange)
}

func New(dim Dimension) *World {
	return &World{
		store:     NewChunkStore(),
		dimension: dim,
		entities:  make(map[BlockPos]any),
	}
}

// NewEmpty creates an empty overworld.
func NewEmpty() *World {
	return New(Overworld)
}

func (w *World) Dimension() Dimension {
	return w.dimension
}

func (w *World) BlockState(p BlockPos) BlockState {
	return w.store.Get(p)
}

func (w *World) Get(p BlockPos) BlockType {
	return w.store.Get(p).Type
}

func (w *World) IsAir(p BlockPos) bool {
	return w.store.IsAir(p)
}

// Set places the default state of a block type without notifying anyone.
func (w *World) Set(p BlockPos, t BlockType) {
	w.SetBlockState(p, Default(t), 0)
}

// SetBlockState replaces the state at p. It returns false when nothing changed
// or when p lies outside the buildable height.
func (w *World) SetBlockState(p BlockPos, s BlockState, flags int) bool {
	old, changed := w.store.Set(p, s)
	if !changed {
		return false
	}
	if old.Type != s.Type {
		delete(w.entities, p)
		if s.Type == BlockTypeChest {
			w.entities[p] = &ChestEntity{}
		}
	}
	ch := BlockChange{Pos: p, Old: old, New: s, Flags: flags}
	for _, l := range w.listeners {
		l(ch)
	}
	return true
}

// BreakBlock removes the block at p, leaving whatever fluid it held.
// When drop is set the removed state is recorded as a drop attributed to breaker.
func (w *World) BreakBlock(p BlockPos, drop bool, breaker string) bool {
	s := w.BlockState(p)
	if s.IsAir() {
		return false
	}
	fs := s.FluidState()
	if drop && !s.IsLiquid() {
		w.drops = append(w.drops, Drop{Pos: p, State: s, Breaker: breaker})
	}
	if s.IsLiquid() {
		return w.SetBlockState(p, Air, NotifyAll)
	}
	return w.SetBlockState(p, fs.BlockState(), NotifyAll)
}

func (w *World) AddParticle(kind ParticleKind, pos, vel mgl32.Vec3) {
	w.particles = append(w.particles, Particle{Kind: kind, Position: pos, Velocity: vel})
}

// AddBlockParticle emits the crack particles of a broken block.
func (w *World) AddBlockParticle(s BlockState, pos mgl32.Vec3) {
	w.particles = append(w.particles, Particle{Kind: ParticleBlockCrack, Position: pos, State: s})
}

// Particles returns the particles emitted since the last ClearParticles.
func (w *World) Particles() []Particle {
	return w.particles
}

func (w *World) ClearParticles() {
	w.particles = w.particles[:0]
}

func (w *World) Drops() []Drop {
	return w.drops
}

func (w *World) BlockEntity(p BlockPos) any {
	return w.entities[p]
}

func (w *World) SetBlockEntity(p BlockPos, be any) {
	if be == nil {
		delete(w.entities, p)
		return
	}
	w.entities[p] = be
}

// Stats reports the loaded chunk columns, the non-air blocks they hold and
// how many block changes they have seen.
func (w *World) Stats() (chunks, blocks int, changes uint64) {
	chunks = w.store.Len()
	w.store.Each(func(c *Chunk) {
		blocks += c.NonAirCount()
		changes += c.ModCount()
	})
	return chunks, blocks, changes
}

// OnBlockChange registers a listener called after each block change.
func (w *World) OnBlockChange(fn func(BlockChange)) {
	w.listeners = append(w.listeners, fn)
}

// Fill sets every position in the box spanned by a and b to s.
func (w *World) Fill(a, b BlockPos, s BlockState) {
	for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			for z := min(a.Z, b.Z); z <= max(a.Z, b.Z); z++ {
				w.SetBlockState(Pos(x, y, z), s, 0)
			}
		}
	}
}
