package entity

import (
	"mini-fortress/internal/inventory"
	"mini-fortress/internal/item"

	"github.com/go-gl/mathgl/mgl32"
)

// Player is a player-like entity. Its hotbar selection belongs to the inventory.
type Player struct {
	body
	GameMode  GameMode
	Inventory *inventory.Inventory
	Vitals    Vitals
}

func NewPlayer(id string, pos mgl32.Vec3, mode GameMode) *Player {
	return &Player{
		body:      newBody(id, pos),
		GameMode:  mode,
		Inventory: inventory.New(),
		Vitals:    NewVitals(),
	}
}

func (p *Player) StackInHand(h Hand) *item.ItemStack {
	if h == OffHand {
		return p.Inventory.OffHand
	}
	return p.Inventory.GetCurrentItem()
}

func (p *Player) SetStackInHand(h Hand, s *item.ItemStack) {
	if h == OffHand {
		p.Inventory.SetItem(inventory.OffHandIndex, s)
		return
	}
	p.Inventory.SetCurrentStack(s)
}

func (p *Player) ApplyDamage(amount float32) {
	if p.GameMode == GameModeCreative {
		return
	}
	p.Vitals.ApplyDamage(amount)
}
