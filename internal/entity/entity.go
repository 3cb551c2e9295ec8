package entity

import (
	"math"

	"mini-fortress/internal/item"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	EyeHeight   = 1.62
	Height      = 1.8
	Width       = 0.6
	SneakOffset = 0.08
)

type GameMode int

const (
	GameModeSurvival GameMode = iota
	GameModeCreative
)

func (m GameMode) String() string {
	if m == GameModeCreative {
		return "creative"
	}
	return "survival"
}

// Hand selects which hand holds or uses a stack.
type Hand int

const (
	MainHand Hand = iota
	OffHand
)

// Hands lists the hands in the order interactions try them.
var Hands = [...]Hand{MainHand, OffHand}

func (h Hand) String() string {
	if h == OffHand {
		return "off_hand"
	}
	return "main_hand"
}

// Entity interface
type Entity interface {
	ID() string
	Position() mgl32.Vec3
	IsDead() bool
	SetDead()
	GetBounds() (width, height float32)
}

// Living is an entity with hands and a head.
type Living interface {
	Entity
	GetEyePosition() mgl32.Vec3
	Rotation() (yaw, pitch float32)
	GetFrontVector() mgl32.Vec3
	StackInHand(h Hand) *item.ItemStack
	SetStackInHand(h Hand, s *item.ItemStack)
	SwingHand(h Hand)
	Vehicle() Entity
}

// Vitals holds the hunger and health bars.
type Vitals struct {
	Health       float32
	MaxHealth    float32
	FoodLevel    float32
	MaxFoodLevel float32
	Saturation   float32
}

func NewVitals() Vitals {
	return Vitals{
		Health:       20.0,
		MaxHealth:    20.0,
		FoodLevel:    20.0,
		MaxFoodLevel: 20.0,
		Saturation:   5.0,
	}
}

func (v *Vitals) ApplyDamage(amount float32) {
	v.Health = max(v.Health-amount, 0)
}

func (v *Vitals) AddExhaustion(food float32) {
	if v.Saturation > 0 {
		used := min(v.Saturation, food)
		v.Saturation -= used
		food -= used
	}
	v.FoodLevel = max(v.FoodLevel-food, 0)
}

// LookVector is the unit view direction for a yaw and pitch in degrees.
// Yaw 0 looks south (+Z), yaw 90 west; positive pitch looks down.
func LookVector(yaw, pitch float32) mgl32.Vec3 {
	y := -float64(yaw)*math.Pi/180 - math.Pi
	p := -float64(pitch) * math.Pi / 180
	h := math.Cos(y)
	i := math.Sin(y)
	j := -math.Cos(p)
	k := math.Sin(p)
	return mgl32.Vec3{float32(i * j), float32(k), float32(h * j)}
}

// eyeOf returns the eye position for an entity standing at pos.
func eyeOf(pos mgl32.Vec3, sneaking bool) mgl32.Vec3 {
	eyeOffset := float32(EyeHeight)
	if sneaking {
		eyeOffset -= SneakOffset
	}
	return pos.Add(mgl32.Vec3{0, eyeOffset, 0})
}

// swingState counts swings per hand and drives the swing animation timer.
type swingState struct {
	handSwingTimer    float64
	handSwingDuration float64
	HandSwingProgress float32
	swings            [len(Hands)]int
}

func (s *swingState) SwingHand(h Hand) {
	s.handSwingTimer = s.handSwingDuration
	s.swings[h]++
}

// Swings returns how many times the hand swung.
func (s *swingState) Swings(h Hand) int {
	return s.swings[h]
}

func (s *swingState) updateSwing(dt float64) {
	if s.handSwingTimer <= 0 {
		s.HandSwingProgress = 0
		return
	}
	s.handSwingTimer = max(s.handSwingTimer-dt, 0)
	s.HandSwingProgress = float32(1 - s.handSwingTimer/s.handSwingDuration)
}
