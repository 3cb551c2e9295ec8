package behavior

import (
	"errors"
	"fmt"

	"mini-fortress/internal/inventory"
)

// Reserved hotbar slots.
const (
	ToolSlot      = 0
	ThrowawaySlot = 8

	FirstTempSlot = 1
	LastTempSlot  = 7
)

var ErrBadLayout = errors.New("behavior: invalid hotbar layout")

// Layout names the hotbar slots the inventory behavior owns.
type Layout struct {
	Tool      int
	Throwaway int
	// Temporary slots run from TempFirst to TempLast inclusive.
	TempFirst int
	TempLast  int
}

var DefaultLayout = Layout{
	Tool:      ToolSlot,
	Throwaway: ThrowawaySlot,
	TempFirst: FirstTempSlot,
	TempLast:  LastTempSlot,
}

func inHotbar(i int) bool {
	return i >= 0 && i < inventory.HotbarSize
}

// Validate checks that every slot is on the hotbar and that the reserved slots
// are distinct and outside the temporary range.
func (l Layout) Validate() error {
	for _, s := range []int{l.Tool, l.Throwaway, l.TempFirst, l.TempLast} {
		if !inHotbar(s) {
			return fmt.Errorf("%w: slot %d is off the hotbar", ErrBadLayout, s)
		}
	}
	if l.Tool == l.Throwaway {
		return fmt.Errorf("%w: tool and throwaway share slot %d", ErrBadLayout, l.Tool)
	}
	if l.TempFirst > l.TempLast {
		return fmt.Errorf("%w: empty temporary range %d..%d", ErrBadLayout, l.TempFirst, l.TempLast)
	}
	if l.isTemp(l.Tool) || l.isTemp(l.Throwaway) {
		return fmt.Errorf("%w: reserved slot inside temporary range %d..%d", ErrBadLayout, l.TempFirst, l.TempLast)
	}
	return nil
}

func (l Layout) isTemp(i int) bool {
	return i >= l.TempFirst && i <= l.TempLast
}
