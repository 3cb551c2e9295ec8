package tools

import (
	"mini-fortress/internal/inventory"
	"mini-fortress/internal/item"
	"mini-fortress/internal/world"
)

type speedKey struct {
	hash       int
	efficiency int
	block      world.BlockType
}

// ToolSet remembers mining speeds per stack and block for one agent.
type ToolSet struct {
	scorer Scorer
	cache  map[speedKey]float64
}

func NewToolSet(itemSaver bool) *ToolSet {
	return &ToolSet{
		scorer: Scorer{ItemSaver: itemSaver},
		cache:  make(map[speedKey]float64),
	}
}

// SetItemSaver changes the policy. Cached speeds do not depend on it.
func (ts *ToolSet) SetItemSaver(on bool) {
	ts.scorer.ItemSaver = on
}

// Speed is SpeedVsBlock backed by the cache.
func (ts *ToolSet) Speed(stack *item.ItemStack, s world.BlockState) float64 {
	if stack.IsEmpty() {
		return 1
	}
	k := speedKey{hash: stack.Hash(), efficiency: stack.Efficiency, block: s.Type}
	if v, ok := ts.cache[k]; ok {
		return v
	}
	v := SpeedVsBlock(stack, s)
	ts.cache[k] = v
	return v
}

// CacheLen returns the number of cached speeds.
func (ts *ToolSet) CacheLen() int {
	return len(ts.cache)
}

// BestSlot picks the hotbar slot that mines s fastest. The selected slot wins ties.
func (ts *ToolSet) BestSlot(inv *inventory.Inventory, s world.BlockState) int {
	best := inv.CurrentItem
	bestSpeed := ts.slotSpeed(inv, best, s)
	for i := range inventory.HotbarSize {
		if i == inv.CurrentItem {
			continue
		}
		speed := ts.slotSpeed(inv, i, s)
		if speed > bestSpeed {
			best, bestSpeed = i, speed
		}
	}
	return best
}

func (ts *ToolSet) slotSpeed(inv *inventory.Inventory, i int, s world.BlockState) float64 {
	stack := inv.GetItem(i)
	if ts.scorer.ItemSaver && Exhausted(stack) {
		return Ineligible
	}
	return ts.Speed(stack, s)
}

// BreakTicksFor estimates the ticks to mine s with the best hotbar tool.
func (ts *ToolSet) BreakTicksFor(inv *inventory.Inventory, s world.BlockState) (int, float64) {
	slot := ts.BestSlot(inv, s)
	return slot, BreakTicks(s, ts.slotSpeed(inv, slot, s))
}
