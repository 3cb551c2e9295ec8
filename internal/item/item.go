package item

import "mini-fortress/internal/world"

// ItemStack represents a stack of items
type ItemStack struct {
	Type   ID
	Count  int
	Damage int
	// Efficiency is the level of the mining speed modifier attached to the stack.
	Efficiency int
}

// NewItemStack creates a new item stack
func NewItemStack(t ID, count int) ItemStack {
	return ItemStack{
		Type:  t,
		Count: count,
	}
}

// IsEmpty treats nil, air and zero-count stacks alike.
func (s *ItemStack) IsEmpty() bool {
	return s == nil || s.Type == Air || s.Count <= 0
}

// Copy returns a detached copy of the stack. A nil stack copies to nil.
func (s *ItemStack) Copy() *ItemStack {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s *ItemStack) Def() Def {
	if s == nil {
		return Lookup(Air)
	}
	return Lookup(s.Type)
}

// GetMaxStackSize returns the maximum stack size for this item
func (s ItemStack) GetMaxStackSize() int {
	return Lookup(s.Type).MaxStack()
}

// IsStackable returns if the item can be stacked
func (s ItemStack) IsStackable() bool {
	return s.GetMaxStackSize() > 1 && Lookup(s.Type).MaxDamage == 0
}

// IsItemEqual checks if two stacks contain the same item type
func (s ItemStack) IsItemEqual(other ItemStack) bool {
	return s.Type == other.Type
}

func (s ItemStack) MaxDamage() int {
	return Lookup(s.Type).MaxDamage
}

// IsIn reports whether the stack's item carries the tag.
func (s *ItemStack) IsIn(tag string) bool {
	if s.IsEmpty() {
		return false
	}
	return Lookup(s.Type).HasTag(tag)
}

// IsInAny reports whether the stack's item carries any of the tags.
func (s *ItemStack) IsInAny(tags []string) bool {
	for _, t := range tags {
		if s.IsIn(t) {
			return true
		}
	}
	return false
}

// Hash identifies the stack by item and damage. Two stacks of the same item with the
// same wear hash alike, so caches keyed on it survive slot shuffles.
func (s *ItemStack) Hash() int {
	if s == nil {
		return -1
	}
	return int(s.Type)<<16 | s.Damage&0xffff
}

// Block returns the block a block item places.
func (s *ItemStack) Block() (world.BlockType, bool) {
	if s.IsEmpty() {
		return world.BlockTypeAir, false
	}
	d := Lookup(s.Type)
	return d.Block, d.Kind == KindBlock
}
