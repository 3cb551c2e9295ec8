package entity

import "github.com/go-gl/mathgl/mgl32"

const (
	BoatWidth  = 1.375
	BoatHeight = 0.5625
)

// Boat is a rowable vehicle.
type Boat struct {
	id   string
	Pos  mgl32.Vec3
	dead bool
}

func NewBoat(id string, pos mgl32.Vec3) *Boat {
	return &Boat{id: id, Pos: pos}
}

func (b *Boat) ID() string                { return b.id }
func (b *Boat) Position() mgl32.Vec3      { return b.Pos }
func (b *Boat) IsDead() bool              { return b.dead }
func (b *Boat) SetDead()                  { b.dead = true }
func (b *Boat) GetBounds() (w, h float32) { return BoatWidth, BoatHeight }
