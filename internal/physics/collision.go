package physics

import (
	"mini-fortress/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// IntersectsBlock reports whether an entity box standing at pos (feet centre) with the
// given width and height overlaps the unit block at p.
func IntersectsBlock(pos mgl32.Vec3, width, height float32, p world.BlockPos) bool {
	half := width / 2
	bx, by, bz := float32(p.X), float32(p.Y), float32(p.Z)
	return pos.X()-half < bx+1 && pos.X()+half > bx &&
		pos.Y() < by+1 && pos.Y()+height > by &&
		pos.Z()-half < bz+1 && pos.Z()+half > bz
}
