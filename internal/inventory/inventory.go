package inventory

import (
	"mini-fortress/internal/item"
)

const (
	MainInventorySize  = 36
	ArmorInventorySize = 4
	HotbarSize         = 9

	// OffHandIndex is the global index of the off hand slot, after the armor slots.
	OffHandIndex = MainInventorySize + ArmorInventorySize
)

type Inventory struct {
	// Main inventory includes hotbar (indices 0-8) and main storage (9-35)
	MainInventory  [MainInventorySize]*item.ItemStack
	ArmorInventory [ArmorInventorySize]*item.ItemStack
	OffHand        *item.ItemStack
	CurrentItem    int // Index 0-8
}

func New() *Inventory {
	return &Inventory{
		CurrentItem: 0,
	}
}

// Size is the number of main slots; hotbar and storage are scanned over 0..Size-1.
func (inv *Inventory) Size() int {
	return MainInventorySize
}

// GetItem returns the item stack at the given global index
// 0-35: Main Inventory (including hotbar)
// 36-39: Armor Inventory
// 40: Off hand
func (inv *Inventory) GetItem(index int) *item.ItemStack {
	switch {
	case index >= 0 && index < MainInventorySize:
		return inv.MainInventory[index]
	case index >= MainInventorySize && index < OffHandIndex:
		return inv.ArmorInventory[index-MainInventorySize]
	case index == OffHandIndex:
		return inv.OffHand
	}
	return nil
}

// SetItem sets the item stack at the given global index. Empty stacks are stored as nil.
func (inv *Inventory) SetItem(index int, stack *item.ItemStack) {
	if stack.IsEmpty() {
		stack = nil
	}
	switch {
	case index >= 0 && index < MainInventorySize:
		inv.MainInventory[index] = stack
	case index >= MainInventorySize && index < OffHandIndex:
		inv.ArmorInventory[index-MainInventorySize] = stack
	case index == OffHandIndex:
		inv.OffHand = stack
	}
}

// Swap exchanges the stacks held by two slots. Nothing is copied, dropped or merged.
func (inv *Inventory) Swap(a, b int) {
	if a == b {
		return
	}
	sa, sb := inv.GetItem(a), inv.GetItem(b)
	inv.SetItem(a, sb)
	inv.SetItem(b, sa)
}

// GetCurrentItem returns the currently selected item in the hotbar
func (inv *Inventory) GetCurrentItem() *item.ItemStack {
	if inv.CurrentItem >= 0 && inv.CurrentItem < HotbarSize {
		return inv.MainInventory[inv.CurrentItem]
	}
	return nil
}

// SetCurrentStack replaces the stack in the selected hotbar slot.
func (inv *Inventory) SetCurrentStack(stack *item.ItemStack) {
	inv.SetItem(inv.CurrentItem, stack)
}

// AddItem attempts to add an item stack to the inventory.
// Returns true if successful (fully added), false if failed (inventory full).
// Updates the passed stack's count if partially added.
func (inv *Inventory) AddItem(stack *item.ItemStack) bool {
	if stack.IsEmpty() {
		return false
	}

	// 1. Try to merge with existing stacks
	if stack.IsStackable() {
		for i := range len(inv.MainInventory) {
			existing := inv.MainInventory[i]
			if existing != nil && existing.IsItemEqual(*stack) {
				maxStack := existing.GetMaxStackSize()
				if existing.Count < maxStack {
					toAdd := min(stack.Count, maxStack-existing.Count)
					existing.Count += toAdd
					stack.Count -= toAdd
					if stack.Count == 0 {
						return true
					}
				}
			}
		}
	}

	// 2. Place in empty slots
	for stack.Count > 0 {
		emptySlot := inv.GetFirstEmptyStack()
		if emptySlot < 0 {
			// No more room
			return false
		}
		toAdd := min(stack.Count, stack.GetMaxStackSize())
		placed := *stack
		placed.Count = toAdd
		inv.MainInventory[emptySlot] = &placed
		stack.Count -= toAdd
	}

	return true
}

// GetFirstEmptyStack returns the index of the first empty slot in main inventory
func (inv *Inventory) GetFirstEmptyStack() int {
	for i := range len(inv.MainInventory) {
		if inv.MainInventory[i].IsEmpty() {
			return i
		}
	}
	return -1
}

// SetCurrentItem sets the selected hotbar slot directly (0-8)
func (inv *Inventory) SetCurrentItem(index int) {
	if index >= 0 && index < HotbarSize {
		inv.CurrentItem = index
	}
}

// Count sums the items of type t across the main inventory.
func (inv *Inventory) Count(t item.ID) int {
	n := 0
	for _, slot := range inv.MainInventory {
		if !slot.IsEmpty() && slot.Type == t {
			n += slot.Count
		}
	}
	return n
}
