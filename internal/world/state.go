package world

// BlockState is a block type together with the properties it was placed with.
// States are plain values and compare with ==.
type BlockState struct {
	Type   BlockType
	Open   bool
	Facing BlockFace
	// Level is the fluid level property of fluid blocks: 0 is a source, 1..7 flowing, 8+ falling.
	Level       int
	Waterlogged bool
}

// Air is the empty block state.
var Air = BlockState{Type: BlockTypeAir}

// Default returns the default state of a block type.
func Default(t BlockType) BlockState {
	return BlockState{Type: t, Facing: FaceNorth}
}

func (s BlockState) IsAir() bool {
	return s.Type == BlockTypeAir
}

// WithOpen returns a copy of the state with the open property set.
func (s BlockState) WithOpen(open bool) BlockState {
	s.Open = open
	return s
}

func (s BlockState) WithFacing(f BlockFace) BlockState {
	s.Facing = f
	return s
}

func (s BlockState) WithWaterlogged(w bool) BlockState {
	s.Waterlogged = w
	return s
}

// IsLiquid reports whether the block itself is a fluid block.
func (s BlockState) IsLiquid() bool {
	return s.Type == BlockTypeWater || s.Type == BlockTypeLava
}

// FluidState returns the fluid held by the block, either as a fluid block or waterlogged.
func (s BlockState) FluidState() FluidState {
	switch {
	case s.Type == BlockTypeWater:
		return fluidStateFromLevel(FluidWater, s.Level)
	case s.Type == BlockTypeLava:
		return fluidStateFromLevel(FluidLava, s.Level)
	case s.Waterlogged:
		return FluidState{Fluid: FluidWater, Amount: 8, Source: true}
	}
	return FluidState{}
}
