package entity

import (
	"mini-fortress/internal/inventory"
	"mini-fortress/internal/item"

	"github.com/go-gl/mathgl/mgl32"
)

// Worker is an autonomous colonist. It has no player behind it and exposes its
// inventory, selection and vitals directly.
type Worker struct {
	body
	Profession string
	inv        *inventory.Inventory
	vitals     Vitals
}

func NewWorker(id string, pos mgl32.Vec3) *Worker {
	return &Worker{
		body:   newBody(id, pos),
		inv:    inventory.New(),
		vitals: NewVitals(),
	}
}

func (w *Worker) Inventory() *inventory.Inventory { return w.inv }
func (w *Worker) Vitals() *Vitals                 { return &w.vitals }
func (w *Worker) SelectedSlot() int               { return w.inv.CurrentItem }

// Player is always nil: no player stands behind a worker.
func (w *Worker) Player() *Player { return nil }

// SelectSlot makes hotbar slot i the main hand. Out of range slots are ignored.
func (w *Worker) SelectSlot(i int) {
	w.inv.SetCurrentItem(i)
}

func (w *Worker) StackInHand(h Hand) *item.ItemStack {
	if h == OffHand {
		return w.inv.OffHand
	}
	return w.inv.GetCurrentItem()
}

func (w *Worker) SetStackInHand(h Hand, s *item.ItemStack) {
	if h == OffHand {
		w.inv.SetItem(inventory.OffHandIndex, s)
		return
	}
	w.inv.SetCurrentStack(s)
}
