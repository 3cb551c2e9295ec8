// Package behavior keeps an agent's hotbar stocked with a tool and throwaway blocks.
package behavior

import (
	"errors"
	"log"
	"math/rand"

	"mini-fortress/internal/agent"
	"mini-fortress/internal/inventory"
	"mini-fortress/internal/item"
	"mini-fortress/internal/profiling"
	"mini-fortress/internal/registry"
	"mini-fortress/internal/settings"
	"mini-fortress/internal/tools"
	"mini-fortress/internal/world"
)

// Planner is the builder deciding what belongs at a position.
type Planner interface {
	// PlaceAt returns the state the build wants at pos, given what is there now.
	PlaceAt(pos world.BlockPos, current world.BlockState) (world.BlockState, bool)
}

// BlockReader is the world as the inventory behavior sees it.
type BlockReader interface {
	BlockState(p world.BlockPos) world.BlockState
}

// referenceBlock stands in for "something hard" when picking the default tool.
var referenceBlock = world.Default(world.BlockTypeStone)

var ErrNoInventory = errors.New("behavior: agent has no inventory")

// Inventory arranges one agent's hotbar.
type Inventory struct {
	agent    agent.Agent
	world    BlockReader
	settings *settings.Store
	planner  Planner
	rng      *rand.Rand
	layout   Layout
	Logger   *log.Logger
}

// New builds the behavior for a. planner may be nil.
func New(a agent.Agent, w BlockReader, store *settings.Store, planner Planner, rng *rand.Rand) (*Inventory, error) {
	return NewWithLayout(a, w, store, planner, rng, DefaultLayout)
}

func NewWithLayout(a agent.Agent, w BlockReader, store *settings.Store, planner Planner, rng *rand.Rand, layout Layout) (*Inventory, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if a.Inventory() == nil {
		return nil, ErrNoInventory
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Inventory{
		agent:    a,
		world:    w,
		settings: store,
		planner:  planner,
		rng:      rng,
		layout:   layout,
	}, nil
}

func (b *Inventory) logf(format string, args ...any) {
	if b.Logger != nil {
		b.Logger.Printf(format, args...)
	}
}

// OnTick moves a throwaway stack and the best pickaxe from storage onto their
// reserved hotbar slots. It does nothing unless inventory management is allowed.
func (b *Inventory) OnTick() {
	defer profiling.Track("behavior.OnTick")()

	if !b.settings.AllowInventory() {
		return
	}
	inv := b.agent.Inventory()

	if i := b.firstValidThrowaway(inv); i >= inventory.HotbarSize {
		b.swapWithHotbar(inv, i, b.layout.Throwaway)
	}
	scorer := tools.Scorer{ItemSaver: b.settings.ItemSaver()}
	if pick, ok := scorer.BestToolAgainst(inv, referenceBlock, item.ToolFamilyPickaxe); ok && pick >= inventory.HotbarSize {
		b.swapWithHotbar(inv, pick, b.layout.Tool)
	}
}

func (b *Inventory) swapWithHotbar(inv *inventory.Inventory, inInventory, inHotbar int) {
	b.logf("%s: swapping slot %d into hotbar slot %d", b.agent.ID(), inInventory, inHotbar)
	inv.Swap(inInventory, inHotbar)
}

func (b *Inventory) firstValidThrowaway(inv *inventory.Inventory) int {
	tags := b.settings.ThrowawayTags()
	for i := range inv.Size() {
		if inv.GetItem(i).IsInAny(tags) {
			return i
		}
	}
	return -1
}

// GetTempHotbarSlot picks a random temporary slot not excluded by disallowed,
// preferring empty ones. disallowed may be nil.
func (b *Inventory) GetTempHotbarSlot(disallowed func(int) bool) (int, bool) {
	inv := b.agent.Inventory()
	allowed := func(i int) bool {
		return disallowed == nil || !disallowed(i)
	}

	var candidates []int
	for i := b.layout.TempFirst; i <= b.layout.TempLast; i++ {
		if inv.GetItem(i).IsEmpty() && allowed(i) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := b.layout.TempFirst; i <= b.layout.TempLast; i++ {
			if allowed(i) {
				candidates = append(candidates, i)
			}
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[b.rng.Intn(len(candidates))], true
}

// AttemptToPutOnHotbar swaps the stack at src into a temporary hotbar slot.
func (b *Inventory) AttemptToPutOnHotbar(src int, disallowed func(int) bool) bool {
	dst, ok := b.GetTempHotbarSlot(disallowed)
	if !ok {
		return false
	}
	b.swapWithHotbar(b.agent.Inventory(), src, dst)
	return true
}

// HasGenericThrowaway reports whether an acceptable throwaway stack is on the hotbar.
func (b *Inventory) HasGenericThrowaway() bool {
	return b.Throwaway(false, b.isThrowaway)
}

func (b *Inventory) isThrowaway(s *item.ItemStack) bool {
	return s.IsInAny(b.settings.ThrowawayTags())
}

// SelectThrowawayForLocation finds a hotbar stack to place at pos. It prefers a
// block item that places exactly the state the planner wants there, then one of the
// same block in any orientation, then any throwaway stack.
func (b *Inventory) SelectThrowawayForLocation(sel bool, pos world.BlockPos) bool {
	defer profiling.Track("behavior.SelectThrowawayForLocation")()

	if b.planner != nil && b.world != nil {
		current := b.world.BlockState(pos)
		if want, ok := b.planner.PlaceAt(pos, current); ok {
			yaw, _ := b.agent.Rotation()
			ctx := registry.PlacementContext{
				Facing:   world.HorizontalFacing(yaw),
				Side:     world.FaceTop,
				Existing: current,
			}
			exact := func(s *item.ItemStack) bool {
				t, ok := s.Block()
				return ok && registry.PlacementState(t, ctx) == want
			}
			if b.Throwaway(sel, exact) {
				return true
			}
			sameBlock := func(s *item.ItemStack) bool {
				t, ok := s.Block()
				return ok && t == want.Type
			}
			if b.Throwaway(sel, sameBlock) {
				return true
			}
		}
	}
	return b.Throwaway(sel, b.isThrowaway)
}

// Throwaway looks for the first hotbar stack matching desired and, when sel is
// set, makes it the selected slot. Empty slots are passed to desired as nil stacks.
func (b *Inventory) Throwaway(sel bool, desired func(*item.ItemStack) bool) bool {
	inv := b.agent.Inventory()
	for i := range inventory.HotbarSize {
		if desired(inv.GetItem(i)) {
			if sel {
				b.agent.SelectSlot(i)
			}
			return true
		}
	}
	return false
}

// SlotWithTag returns the first non-empty slot whose item has tag, or -1.
func (b *Inventory) SlotWithTag(tag string) int {
	return SlotWithTag(b.agent.Inventory(), tag)
}

func SlotWithTag(inv *inventory.Inventory, tag string) int {
	for i := range inv.Size() {
		if s := inv.GetItem(i); !s.IsEmpty() && s.IsIn(tag) {
			return i
		}
	}
	return -1
}
