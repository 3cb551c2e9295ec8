// Package placer paces an agent's right clicks.
package placer

import (
	"mini-fortress/internal/controller"
	"mini-fortress/internal/entity"
	"mini-fortress/internal/physics"
	"mini-fortress/internal/profiling"
	"mini-fortress/internal/settings"
)

// Helper fires at most one right click every RightClickSpeed ticks.
type Helper struct {
	ctrl            *controller.Controller
	settings        *settings.Store
	rightClickTimer int
}

func New(ctrl *controller.Controller, store *settings.Store) *Helper {
	return &Helper{ctrl: ctrl, settings: store}
}

// Cooldown returns the ticks left before the next click may fire.
func (h *Helper) Cooldown() int {
	return h.rightClickTimer
}

// Tick runs once per tick. It reports whether a click fired.
func (h *Helper) Tick(rightClickRequested bool) bool {
	defer profiling.Track("placer.Tick")()

	if h.rightClickTimer > 0 {
		h.rightClickTimer--
		return false
	}
	a := h.ctrl.Agent()
	_, rowingBoat := a.Vehicle().(*entity.Boat)
	if !rightClickRequested || rowingBoat {
		return false
	}
	mouseOver := h.ctrl.MouseOver(physics.FluidNone)
	if mouseOver.Type != physics.HitBlock {
		return false
	}

	h.rightClickTimer = h.settings.RightClickSpeed()
	for _, hand := range entity.Hands {
		res := h.ctrl.ProcessRightClickBlock(hand, mouseOver)
		if res.Accepted() {
			if res.ShouldSwingHand() {
				a.SwingHand(hand)
			}
			return true
		}
		if !a.StackInHand(hand).IsEmpty() && h.ctrl.ProcessRightClick(hand).Accepted() {
			return true
		}
	}
	return true
}
