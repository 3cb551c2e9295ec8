// Package agent gives players and autonomous workers one view for inventory handling.
package agent

import (
	"errors"
	"fmt"

	"mini-fortress/internal/entity"
	"mini-fortress/internal/inventory"
)

// ErrUnsupportedEntity is returned for entities that are neither player-like nor workers.
var ErrUnsupportedEntity = errors.New("agent: unsupported entity")

// Agent is what inventory and interaction logic needs to know about the acting entity.
type Agent interface {
	entity.Living
	Inventory() *inventory.Inventory
	SelectedSlot() int
	SelectSlot(i int)
	// Player returns the player behind the agent, or nil for autonomous agents.
	Player() *entity.Player
	Vitals() *entity.Vitals
}

// Autonomous reports whether no player drives the agent.
func Autonomous(a Agent) bool {
	return a.Player() == nil
}

type human = entity.Player

// playerAgent routes slot selection through the player's inventory.
type playerAgent struct {
	*human
}

func (p playerAgent) Inventory() *inventory.Inventory { return p.human.Inventory }
func (p playerAgent) SelectedSlot() int               { return p.human.Inventory.CurrentItem }
func (p playerAgent) SelectSlot(i int)                { p.human.Inventory.SetCurrentItem(i) }
func (p playerAgent) Player() *entity.Player          { return p.human }
func (p playerAgent) Vitals() *entity.Vitals          { return &p.human.Vitals }

// Of adapts e to the Agent view.
func Of(e entity.Entity) (Agent, error) {
	switch v := e.(type) {
	case *entity.Player:
		if v == nil {
			break
		}
		return playerAgent{v}, nil
	case *entity.Worker:
		if v == nil {
			break
		}
		return v, nil
	case Agent:
		return v, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedEntity, e)
}

// MustOf is like Of but panics for entities that cannot act.
func MustOf(e entity.Entity) Agent {
	a, err := Of(e)
	if err != nil {
		panic(err)
	}
	return a
}
