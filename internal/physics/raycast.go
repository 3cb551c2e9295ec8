package physics

import (
	"math"

	"mini-fortress/internal/profiling"
	"mini-fortress/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const MaxReachDistance = 5.0

// FluidHandling decides which fluid blocks stop a ray.
type FluidHandling int

const (
	// FluidNone lets rays pass through every fluid.
	FluidNone FluidHandling = iota
	// FluidSourceOnly stops rays on source blocks only.
	FluidSourceOnly
	// FluidAny stops rays on any fluid block.
	FluidAny
)

type HitType int

const (
	HitMiss HitType = iota
	HitBlock
)

// Hit stores the result of a raycast operation
type Hit struct {
	Type     HitType
	Pos      world.BlockPos
	Face     world.BlockFace // face of Pos the ray entered through
	Point    mgl32.Vec3      // exact point where the ray met the block
	Distance float32
}

// Adjacent returns the position in front of the hit face.
func (h Hit) Adjacent() world.BlockPos {
	return h.Pos.Offset(h.Face)
}

// BlockSource is what the raycast reads from.
type BlockSource interface {
	BlockState(p world.BlockPos) world.BlockState
}

func stops(s world.BlockState, mode FluidHandling) bool {
	if s.IsAir() {
		return false
	}
	if s.IsLiquid() {
		switch mode {
		case FluidSourceOnly:
			return s.Level == 0
		case FluidAny:
			return true
		}
		return false
	}
	return true
}

// Raycast walks the voxel grid from start along direction and returns the first block
// that stops the ray within maxDist.
func Raycast(src BlockSource, start, direction mgl32.Vec3, maxDist float32, mode FluidHandling) Hit {
	defer profiling.Track("physics.Raycast")()

	if direction.Len() == 0 {
		return Hit{Type: HitMiss}
	}
	dir := direction.Normalize()
	o := [3]float64{float64(start.X()), float64(start.Y()), float64(start.Z())}
	d := [3]float64{float64(dir.X()), float64(dir.Y()), float64(dir.Z())}

	cell := [3]int{int(math.Floor(o[0])), int(math.Floor(o[1])), int(math.Floor(o[2]))}
	var step [3]int
	var tMax, tDelta [3]float64
	for i := range 3 {
		switch {
		case d[i] > 0:
			step[i] = 1
			tMax[i] = (float64(cell[i]+1) - o[i]) / d[i]
			tDelta[i] = 1 / d[i]
		case d[i] < 0:
			step[i] = -1
			tMax[i] = (o[i] - float64(cell[i])) / -d[i]
			tDelta[i] = -1 / d[i]
		default:
			tMax[i] = math.Inf(1)
			tDelta[i] = math.Inf(1)
		}
	}

	pos := world.Pos(cell[0], cell[1], cell[2])
	if stops(src.BlockState(pos), mode) {
		return Hit{Type: HitBlock, Pos: pos, Face: entryFace(dominantAxis(d), step), Point: start}
	}

	limit := float64(maxDist)
	for {
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		t := tMax[axis]
		if t > limit {
			return Hit{Type: HitMiss}
		}
		cell[axis] += step[axis]
		tMax[axis] += tDelta[axis]

		pos = world.Pos(cell[0], cell[1], cell[2])
		if stops(src.BlockState(pos), mode) {
			return Hit{
				Type:     HitBlock,
				Pos:      pos,
				Face:     entryFace(axis, step),
				Point:    start.Add(dir.Mul(float32(t))),
				Distance: float32(t),
			}
		}
	}
}

func dominantAxis(d [3]float64) int {
	axis := 0
	for i := 1; i < 3; i++ {
		if math.Abs(d[i]) > math.Abs(d[axis]) {
			axis = i
		}
	}
	return axis
}

// entryFace is the face crossed when moving along axis in the step direction.
func entryFace(axis int, step [3]int) world.BlockFace {
	switch axis {
	case 0:
		if step[0] > 0 {
			return world.FaceWest
		}
		return world.FaceEast
	case 1:
		if step[1] > 0 {
			return world.FaceBottom
		}
		return world.FaceTop
	default:
		if step[2] > 0 {
			return world.FaceNorth
		}
		return world.FaceSouth
	}
}
