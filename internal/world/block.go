package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypeCobblestone
	BlockTypeDirt
	BlockTypeGrass
	BlockTypeSand
	BlockTypeGravel
	BlockTypeBedrock
	BlockTypeOakLog
	BlockTypeOakPlanks
	BlockTypeGlass
	BlockTypeNetherrack
	BlockTypeTallGrass
	BlockTypeTorch
	BlockTypeOakDoor
	BlockTypeIronDoor
	BlockTypeOakTrapdoor
	BlockTypeIronTrapdoor
	BlockTypeOakFenceGate
	BlockTypeOakSlab
	BlockTypeChest
	BlockTypeWater
	BlockTypeLava
)

// BlockFace identifies a face of a block
type BlockFace int

const (
	FaceBottom BlockFace = iota
	FaceTop
	FaceNorth
	FaceSouth
	FaceWest
	FaceEast
)

var faceVectors = [...][3]int{
	FaceBottom: {0, -1, 0},
	FaceTop:    {0, 1, 0},
	FaceNorth:  {0, 0, -1},
	FaceSouth:  {0, 0, 1},
	FaceWest:   {-1, 0, 0},
	FaceEast:   {1, 0, 0},
}

// Vector returns the unit offset pointing out of the face.
func (f BlockFace) Vector() [3]int {
	if f < FaceBottom || f > FaceEast {
		return [3]int{}
	}
	return faceVectors[f]
}

func (f BlockFace) Opposite() BlockFace {
	switch f {
	case FaceBottom:
		return FaceTop
	case FaceTop:
		return FaceBottom
	case FaceNorth:
		return FaceSouth
	case FaceSouth:
		return FaceNorth
	case FaceWest:
		return FaceEast
	default:
		return FaceWest
	}
}

func (f BlockFace) IsHorizontal() bool {
	return f >= FaceNorth && f <= FaceEast
}

func (f BlockFace) String() string {
	switch f {
	case FaceBottom:
		return "down"
	case FaceTop:
		return "up"
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceWest:
		return "west"
	case FaceEast:
		return "east"
	}
	return "unknown"
}

// HorizontalFacing maps a yaw in degrees to the horizontal face the entity looks towards.
// Yaw 0 looks south (+Z) and grows clockwise: 90 west, 180 north, 270 east.
func HorizontalFacing(yaw float32) BlockFace {
	q := int(math.Floor(float64(yaw)/90.0+0.5)) & 3
	switch q {
	case 0:
		return FaceSouth
	case 1:
		return FaceWest
	case 2:
		return FaceNorth
	default:
		return FaceEast
	}
}

// BlockPos is an integer block coordinate. The block occupies [X,X+1)x[Y,Y+1)x[Z,Z+1).
type BlockPos struct {
	X, Y, Z int
}

func Pos(x, y, z int) BlockPos {
	return BlockPos{X: x, Y: y, Z: z}
}

// PosOf returns the block containing the point.
func PosOf(v mgl32.Vec3) BlockPos {
	return BlockPos{
		X: int(math.Floor(float64(v.X()))),
		Y: int(math.Floor(float64(v.Y()))),
		Z: int(math.Floor(float64(v.Z()))),
	}
}

func (p BlockPos) Offset(f BlockFace) BlockPos {
	v := f.Vector()
	return BlockPos{X: p.X + v[0], Y: p.Y + v[1], Z: p.Z + v[2]}
}

func (p BlockPos) Add(dx, dy, dz int) BlockPos {
	return BlockPos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Vec returns the minimum corner of the block.
func (p BlockPos) Vec() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// Center returns the middle of the block.
func (p BlockPos) Center() mgl32.Vec3 {
	return p.Vec().Add(mgl32.Vec3{0.5, 0.5, 0.5})
}
