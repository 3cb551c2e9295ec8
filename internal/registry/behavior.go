package registry

import (
	"mini-fortress/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockAccess is the slice of the world block behaviors read and write through.
type BlockAccess interface {
	BlockState(p world.BlockPos) world.BlockState
	SetBlockState(p world.BlockPos, s world.BlockState, flags int) bool
}

// ParticleSink receives the particles block behaviors emit.
type ParticleSink interface {
	AddBlockParticle(s world.BlockState, pos mgl32.Vec3)
}

// OnBreak runs the effects of a player breaking s at p.
func OnBreak(w ParticleSink, p world.BlockPos, s world.BlockState) {
	if s.IsAir() || s.IsLiquid() {
		return
	}
	w.AddBlockParticle(s, p.Center())
}

func Hardness(s world.BlockState) float32 {
	return Lookup(s.Type).Hardness
}

func IsReplaceable(s world.BlockState) bool {
	return Lookup(s.Type).Replaceable
}

func IsDoor(s world.BlockState) bool      { return Lookup(s.Type).Kind == KindDoor }
func IsTrapdoor(s world.BlockState) bool  { return Lookup(s.Type).Kind == KindTrapdoor }
func IsFenceGate(s world.BlockState) bool { return Lookup(s.Type).Kind == KindFenceGate }

// IsFluidFillable reports whether the block accepts a fluid without being replaced.
func IsFluidFillable(s world.BlockState) bool {
	return Lookup(s.Type).FluidFillable
}

// CanOpenByHand reports whether the door or trapdoor at p opens without redstone.
func CanOpenByHand(w BlockAccess, p world.BlockPos) bool {
	return Lookup(w.BlockState(p).Type).OpenableByHand
}

// SetOpen moves a door to the requested open state. It is a no-op for
// anything that is not a door or already in that state.
func SetOpen(w BlockAccess, p world.BlockPos, s world.BlockState, open bool) bool {
	if !IsDoor(s) || s.Open == open {
		return false
	}
	return w.SetBlockState(p, s.WithOpen(open), world.NotifyListeners|world.Redraw)
}

// OnUse runs the block's own use behavior and reports whether it consumed the click.
// Only hand-openable trapdoors react; they toggle.
func OnUse(w BlockAccess, p world.BlockPos, s world.BlockState) bool {
	def := Lookup(s.Type)
	if def.Kind != KindTrapdoor || !def.OpenableByHand {
		return false
	}
	w.SetBlockState(p, s.WithOpen(!s.Open), world.NotifyListeners)
	return true
}

// CanBucketPlace reports whether a bucket may pour fluid into the block, washing it away.
func CanBucketPlace(s world.BlockState, f world.Fluid) bool {
	def := Lookup(s.Type)
	if !f.Flowable() {
		return false
	}
	return def.Replaceable || !def.IsSolid
}

// TryFillWithFluid waterlogs a fluid-fillable block. Only water is accepted.
func TryFillWithFluid(w BlockAccess, p world.BlockPos, s world.BlockState, fs world.FluidState) bool {
	if !IsFluidFillable(s) || s.Waterlogged || fs.Fluid != world.FluidWater {
		return false
	}
	return w.SetBlockState(p, s.WithWaterlogged(true), world.NotifyAll)
}

// TryDrainFluid takes the fluid out of the block: source fluid blocks turn into air,
// waterlogged blocks dry out. It returns the fluid removed, or FluidEmpty.
func TryDrainFluid(w BlockAccess, p world.BlockPos, s world.BlockState) world.Fluid {
	switch {
	case s.IsLiquid() && s.Level == 0:
		if w.SetBlockState(p, world.Air, world.ReplaceFlags) {
			return Lookup(s.Type).Fluid
		}
	case s.Waterlogged:
		if w.SetBlockState(p, s.WithWaterlogged(false), world.NotifyAll) {
			return world.FluidWater
		}
	}
	return world.FluidEmpty
}

// PlacementContext describes how a block is being placed.
type PlacementContext struct {
	// Facing is the placer's horizontal facing.
	Facing world.BlockFace
	// Side is the face of the block that was clicked.
	Side world.BlockFace
	// Existing is the state currently at the destination.
	Existing world.BlockState
}

// PlacementState returns the state t takes when placed in ctx.
func PlacementState(t world.BlockType, ctx PlacementContext) world.BlockState {
	def := Lookup(t)
	s := world.Default(t)
	if def.HasFacing {
		f := ctx.Facing
		if !f.IsHorizontal() {
			f = world.FaceNorth
		}
		s = s.WithFacing(f)
	}
	if def.FluidFillable {
		fs := ctx.Existing.FluidState()
		if fs.Fluid == world.FluidWater && fs.Source {
			s = s.WithWaterlogged(true)
		}
	}
	return s
}
