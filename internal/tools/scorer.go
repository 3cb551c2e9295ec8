// Package tools rates item stacks as mining tools.
package tools

import (
	"math"

	"mini-fortress/internal/inventory"
	"mini-fortress/internal/item"
	"mini-fortress/internal/registry"
	"mini-fortress/internal/world"
)

// Ineligible is the score of a stack that must not be used.
const Ineligible = -1.0

// SpeedVsBlock is the mining speed of stack against s, including efficiency.
// Anything that is not the block's preferred tool mines at speed 1.
func SpeedVsBlock(stack *item.ItemStack, s world.BlockState) float64 {
	if stack.IsEmpty() {
		return 1
	}
	def := stack.Def()
	speed := 1.0
	if def.Family != item.ToolFamilyNone && def.Family == registry.Lookup(s.Type).PreferredTool {
		speed = def.Speed
	}
	if speed > 1 && stack.Efficiency > 0 {
		speed += float64(stack.Efficiency*stack.Efficiency + 1)
	}
	return speed
}

// Exhausted reports whether the stack has no durability left.
func Exhausted(stack *item.ItemStack) bool {
	if stack.IsEmpty() {
		return false
	}
	maxDamage := stack.MaxDamage()
	return stack.Damage >= maxDamage && maxDamage > 1
}

// Scorer scores stacks against blocks under the item saver policy.
type Scorer struct {
	ItemSaver bool
}

// Score returns the effectiveness of stack against s, or Ineligible when the
// stack is empty, not of the family, or exhausted while ItemSaver is on.
func (sc Scorer) Score(stack *item.ItemStack, s world.BlockState, family item.ToolFamily) float64 {
	if stack.IsEmpty() || stack.Def().Family != family {
		return Ineligible
	}
	if sc.ItemSaver && Exhausted(stack) {
		return Ineligible
	}
	return SpeedVsBlock(stack, s)
}

// BestToolAgainst scans the whole inventory for the best eligible stack of the family.
// Ties go to the lowest slot.
func (sc Scorer) BestToolAgainst(inv *inventory.Inventory, s world.BlockState, family item.ToolFamily) (int, bool) {
	best, bestScore := -1, Ineligible
	for i := range inv.Size() {
		score := sc.Score(inv.GetItem(i), s, family)
		if score == Ineligible {
			continue
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, best >= 0
}

// BreakTicks estimates how many ticks mining s takes at the given speed.
func BreakTicks(s world.BlockState, speed float64) float64 {
	hardness := float64(registry.Hardness(s))
	switch {
	case hardness < 0:
		return math.Inf(1)
	case hardness == 0:
		return 0
	case speed <= 0:
		return math.Inf(1)
	}
	return math.Ceil(hardness * 30 / speed)
}
