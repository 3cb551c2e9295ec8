package world

// Fluid identifies a kind of fluid. FluidEmpty is the absence of fluid.
type Fluid int

const (
	FluidEmpty Fluid = iota
	FluidWater
	FluidLava
)

// Fluid tags.
const (
	TagWater = "water"
	TagLava  = "lava"
)

func (f Fluid) String() string {
	switch f {
	case FluidWater:
		return "water"
	case FluidLava:
		return "lava"
	}
	return "empty"
}

// Flowable reports whether the fluid spreads, i.e. can be poured from a bucket.
func (f Fluid) Flowable() bool {
	return f == FluidWater || f == FluidLava
}

func (f Fluid) IsIn(tag string) bool {
	switch tag {
	case TagWater:
		return f == FluidWater
	case TagLava:
		return f == FluidLava
	}
	return false
}

// Block returns the block type that carries the fluid.
func (f Fluid) Block() BlockType {
	switch f {
	case FluidWater:
		return BlockTypeWater
	case FluidLava:
		return BlockTypeLava
	}
	return BlockTypeAir
}

// FluidState describes the fluid inside one block. Amount runs from 1 to 8; 8 is full.
type FluidState struct {
	Fluid   Fluid
	Amount  int
	Source  bool
	Falling bool
}

func (fs FluidState) IsEmpty() bool {
	return fs.Fluid == FluidEmpty
}

// Flowing returns the flowing state of the fluid with the given amount.
func (f Fluid) Flowing(amount int, falling bool) FluidState {
	if !f.Flowable() {
		return FluidState{}
	}
	if amount < 1 {
		amount = 1
	}
	if amount > 8 {
		amount = 8
	}
	return FluidState{Fluid: f, Amount: amount, Falling: falling}
}

// Still returns the source state of the fluid.
func (f Fluid) Still() FluidState {
	if !f.Flowable() {
		return FluidState{}
	}
	return FluidState{Fluid: f, Amount: 8, Source: true}
}

// BlockState converts the fluid state to the block state that renders it.
func (fs FluidState) BlockState() BlockState {
	if fs.IsEmpty() {
		return Air
	}
	level := 0
	if !fs.Source {
		level = 8 - fs.Amount
		if fs.Falling {
			level += 8
		}
	}
	return BlockState{Type: fs.Fluid.Block(), Facing: FaceNorth, Level: level}
}

func fluidStateFromLevel(f Fluid, level int) FluidState {
	if level <= 0 {
		return f.Still()
	}
	falling := level >= 8
	amount := 8 - level%8
	return FluidState{Fluid: f, Amount: amount, Falling: falling}
}

// Dimension carries the per-dimension rules the interaction layer consults.
type Dimension struct {
	ID string
	// Ultrawarm dimensions vaporize water poured into them.
	Ultrawarm bool
}

var (
	Overworld = Dimension{ID: "overworld"}
	Nether    = Dimension{ID: "the_nether", Ultrawarm: true}
)
