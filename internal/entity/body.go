package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// body is the positional state shared by players and workers.
type body struct {
	id         string
	Pos        mgl32.Vec3
	Velocity   mgl32.Vec3
	OnGround   bool
	IsSneaking bool
	Yaw        float32
	Pitch      float32
	dead       bool
	vehicle    Entity
	swingState
}

func newBody(id string, pos mgl32.Vec3) body {
	return body{
		id:         id,
		Pos:        pos,
		swingState: swingState{handSwingDuration: 0.25},
	}
}

func (b *body) ID() string                { return b.id }
func (b *body) Position() mgl32.Vec3      { return b.Pos }
func (b *body) IsDead() bool              { return b.dead }
func (b *body) SetDead()                  { b.dead = true }
func (b *body) GetBounds() (w, h float32) { return Width, Height }
func (b *body) Vehicle() Entity           { return b.vehicle }

func (b *body) GetEyePosition() mgl32.Vec3 {
	return eyeOf(b.Pos, b.IsSneaking)
}

func (b *body) Rotation() (yaw, pitch float32) {
	return b.Yaw, b.Pitch
}

func (b *body) GetFrontVector() mgl32.Vec3 {
	return LookVector(b.Yaw, b.Pitch)
}

// SetRotation sets the head rotation, clamping pitch to straight up or down.
func (b *body) SetRotation(yaw, pitch float32) {
	b.Yaw = float32(math.Mod(float64(yaw), 360))
	if b.Yaw < 0 {
		b.Yaw += 360
	}
	b.Pitch = max(min(pitch, 90), -90)
}

// LookAt turns the head towards target.
func (b *body) LookAt(target mgl32.Vec3) {
	d := target.Sub(b.GetEyePosition())
	horiz := math.Hypot(float64(d.X()), float64(d.Z()))
	yaw := math.Atan2(float64(d.Z()), float64(d.X()))*180/math.Pi - 90
	pitch := -math.Atan2(float64(d.Y()), horiz) * 180 / math.Pi
	b.SetRotation(float32(yaw), float32(pitch))
}

// Mount puts the entity in a vehicle. A nil vehicle dismounts.
func (b *body) Mount(v Entity) {
	b.vehicle = v
}

// Update advances animation timers by dt seconds.
func (b *body) Update(dt float64) {
	b.updateSwing(dt)
}
