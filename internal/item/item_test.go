package item_test

import (
	"testing"

	"mini-fortress/internal/item"
	"mini-fortress/internal/world"
)

func TestMaxStack(t *testing.T) {
	tests := []struct {
		id   item.ID
		want int
	}{
		{item.Cobblestone, 64},
		{item.IronPickaxe, 1},
		{item.Bucket, 16},
		{item.WaterBucket, 1},
		{item.Stick, 64},
	}
	for _, tt := range tests {
		s := item.NewItemStack(tt.id, 1)
		if got := s.GetMaxStackSize(); got != tt.want {
			t.Errorf("%v: expected max stack %d, got %d", s.Def().Name, tt.want, got)
		}
	}
	pick := item.NewItemStack(item.StonePickaxe, 1)
	if pick.IsStackable() {
		t.Errorf("tools never stack")
	}
}

func TestHash(t *testing.T) {
	a := item.NewItemStack(item.IronPickaxe, 1)
	b := item.NewItemStack(item.IronPickaxe, 1)
	b.Efficiency = 3
	if a.Hash() != b.Hash() {
		t.Errorf("enchantments do not change the hash")
	}
	b.Damage = 10
	if a.Hash() == b.Hash() {
		t.Errorf("wear must change the hash")
	}
	var none *item.ItemStack
	if none.Hash() != -1 {
		t.Errorf("expected -1 for a nil stack, got %d", none.Hash())
	}
}

func TestTags(t *testing.T) {
	water := item.NewItemStack(item.WaterBucket, 1)
	if !water.IsIn(item.TagBuckets) {
		t.Errorf("buckets are tagged automatically")
	}
	pick := item.NewItemStack(item.DiamondPickaxe, 1)
	if !pick.IsIn(item.TagPickaxes) || pick.IsIn(item.TagAxes) {
		t.Errorf("unexpected tool tags %v", pick.Def().Tags)
	}
	dirt := item.NewItemStack(item.Dirt, 3)
	if !dirt.IsInAny([]string{"missing", item.TagThrowaway}) {
		t.Errorf("dirt is throwaway")
	}
	var empty *item.ItemStack
	if empty.IsIn(item.TagThrowaway) {
		t.Errorf("empty stacks carry no tags")
	}
}

func TestBlockItems(t *testing.T) {
	id, ok := item.ForBlock(world.BlockTypeOakFenceGate)
	if !ok || id != item.OakFenceGate {
		t.Errorf("expected the fence gate item, got %v %v", id, ok)
	}
	if _, ok := item.ForBlock(world.BlockTypeWater); ok {
		t.Errorf("water has no block item")
	}

	gate := item.NewItemStack(item.OakFenceGate, 1)
	if b, ok := gate.Block(); !ok || b != world.BlockTypeOakFenceGate {
		t.Errorf("expected the gate block, got %v %v", b, ok)
	}
	bucket := item.NewItemStack(item.Bucket, 1)
	if _, ok := bucket.Block(); ok {
		t.Errorf("buckets do not place blocks")
	}
}

func TestLookup(t *testing.T) {
	id, ok := item.ByName("iron_pickaxe")
	if !ok || id != item.IronPickaxe {
		t.Fatalf("expected iron_pickaxe, got %v %v", id, ok)
	}
	if item.Lookup(item.ID(999)).ID != item.Air {
		t.Errorf("unknown ids resolve to air")
	}
	for _, f := range []world.Fluid{world.FluidEmpty, world.FluidWater, world.FluidLava} {
		if got := item.Lookup(item.BucketFor(f)).Fluid; got != f {
			t.Errorf("%v: bucket carries %v", f, got)
		}
	}
}
