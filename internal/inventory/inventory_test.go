package inventory

import (
	"math/rand"
	"testing"

	"mini-fortress/internal/item"
)

func stack(id item.ID, count int) *item.ItemStack {
	s := item.NewItemStack(id, count)
	return &s
}

func contents(inv *Inventory) map[item.ID]int {
	out := make(map[item.ID]int)
	for i := range OffHandIndex + 1 {
		if s := inv.GetItem(i); !s.IsEmpty() {
			out[s.Type] += s.Count
		}
	}
	return out
}

func randomInventory(rng *rand.Rand) *Inventory {
	ids := []item.ID{item.Dirt, item.Cobblestone, item.IronPickaxe, item.Torch, item.WaterBucket}
	inv := New()
	for i := range MainInventorySize {
		if rng.Intn(3) == 0 {
			continue
		}
		inv.SetItem(i, stack(ids[rng.Intn(len(ids))], 1+rng.Intn(16)))
	}
	return inv
}

func TestSwapTwiceRestores(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 100 {
		inv := randomInventory(rng)
		before := inv.MainInventory
		a, b := rng.Intn(MainInventorySize), rng.Intn(MainInventorySize)
		if a == b {
			continue
		}
		inv.Swap(a, b)
		inv.Swap(a, b)
		if inv.MainInventory != before {
			t.Fatalf("double swap of %d and %d changed the inventory", a, b)
		}
	}
}

func TestSwapPreservesContents(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	inv := randomInventory(rng)
	inv.SetItem(OffHandIndex, stack(item.Torch, 4))
	want := contents(inv)
	for range 500 {
		a, b := rng.Intn(OffHandIndex+1), rng.Intn(OffHandIndex+1)
		inv.Swap(a, b)
		got := contents(inv)
		if len(got) != len(want) {
			t.Fatalf("swap %d<->%d changed item kinds: %v vs %v", a, b, got, want)
		}
		for id, n := range want {
			if got[id] != n {
				t.Fatalf("swap %d<->%d changed %v count from %d to %d", a, b, id, n, got[id])
			}
		}
	}
}

func TestSwapExchangesValues(t *testing.T) {
	inv := New()
	dirt := stack(item.Dirt, 7)
	inv.SetItem(2, dirt)
	inv.Swap(2, 30)
	if inv.GetItem(30) != dirt || inv.GetItem(2) != nil {
		t.Errorf("swap with empty slot: 2=%v 30=%v", inv.GetItem(2), inv.GetItem(30))
	}
}

func TestAddItem(t *testing.T) {
	inv := New()
	inv.SetItem(0, stack(item.IronPickaxe, 1))
	inv.SetItem(1, stack(item.Dirt, 60))

	if !inv.AddItem(stack(item.Dirt, 10)) {
		t.Fatalf("AddItem failed")
	}
	if inv.GetItem(1).Count != 64 {
		t.Errorf("merge target = %d", inv.GetItem(1).Count)
	}
	if s := inv.GetItem(2); s == nil || s.Type != item.Dirt || s.Count != 6 {
		t.Errorf("overflow = %+v", s)
	}
	if inv.Count(item.Dirt) != 70 {
		t.Errorf("dirt count = %d", inv.Count(item.Dirt))
	}

	inv.AddItem(stack(item.Bucket, 1))
	if inv.Count(item.Bucket) != 1 || inv.GetFirstEmptyStack() != 4 {
		t.Errorf("bucket not stored in slot 3")
	}
}

func TestAddItemFull(t *testing.T) {
	inv := New()
	for i := range MainInventorySize {
		inv.SetItem(i, stack(item.IronAxe, 1))
	}
	s := stack(item.Stick, 3)
	if inv.AddItem(s) {
		t.Fatalf("full inventory accepted an item")
	}
	if s.Count != 3 {
		t.Errorf("rejected stack count = %d", s.Count)
	}
}

func TestCurrentItem(t *testing.T) {
	inv := New()
	inv.SetCurrentItem(8)
	inv.SetCurrentItem(9)
	if inv.CurrentItem != 8 {
		t.Errorf("out of range selection must be ignored, got %d", inv.CurrentItem)
	}
	inv.SetCurrentStack(stack(item.Torch, 1))
	if inv.GetCurrentItem().Type != item.Torch {
		t.Errorf("current stack = %v", inv.GetCurrentItem())
	}
	inv.SetCurrentStack(stack(item.Torch, 0))
	if inv.GetCurrentItem() != nil {
		t.Errorf("empty stacks must be stored as nil")
	}
}
