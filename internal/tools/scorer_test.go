package tools

import (
	"math"
	"testing"

	"mini-fortress/internal/inventory"
	"mini-fortress/internal/item"
	"mini-fortress/internal/world"
)

func stack(id item.ID) *item.ItemStack {
	s := item.NewItemStack(id, 1)
	return &s
}

var stone = world.Default(world.BlockTypeStone)

func TestSpeedVsBlock(t *testing.T) {
	enchanted := stack(item.IronPickaxe)
	enchanted.Efficiency = 2
	enchantedStick := stack(item.Stick)
	enchantedStick.Efficiency = 5

	tests := []struct {
		name  string
		stack *item.ItemStack
		block world.BlockType
		want  float64
	}{
		{"empty hand", nil, world.BlockTypeStone, 1},
		{"iron pickaxe on stone", stack(item.IronPickaxe), world.BlockTypeStone, 6},
		{"efficiency adds level squared plus one", enchanted, world.BlockTypeStone, 11},
		{"pickaxe on dirt", stack(item.IronPickaxe), world.BlockTypeDirt, 1},
		{"shovel on dirt", stack(item.IronShovel), world.BlockTypeDirt, 6},
		{"efficiency ignored at base speed", enchantedStick, world.BlockTypeStone, 1},
		{"no tool for glass", stack(item.IronAxe), world.BlockTypeGlass, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpeedVsBlock(tt.stack, world.Default(tt.block)); got != tt.want {
				t.Errorf("SpeedVsBlock = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreIneligible(t *testing.T) {
	worn := stack(item.GoldenPickaxe)
	worn.Damage = 32

	saver := Scorer{ItemSaver: true}
	if got := saver.Score(worn, stone, item.ToolFamilyPickaxe); got != Ineligible {
		t.Errorf("worn pickaxe under item saver scored %v", got)
	}
	if got := (Scorer{}).Score(worn, stone, item.ToolFamilyPickaxe); got != 12 {
		t.Errorf("worn pickaxe without item saver scored %v", got)
	}
	if got := saver.Score(stack(item.IronShovel), stone, item.ToolFamilyPickaxe); got != Ineligible {
		t.Errorf("shovel scored %v as a pickaxe", got)
	}
	if got := saver.Score(nil, stone, item.ToolFamilyPickaxe); got != Ineligible {
		t.Errorf("empty stack scored %v", got)
	}
}

func TestBestToolAgainst(t *testing.T) {
	inv := inventory.New()
	inv.SetItem(3, stack(item.StonePickaxe))
	inv.SetItem(12, stack(item.DiamondPickaxe))
	inv.SetItem(20, stack(item.DiamondPickaxe))
	worn := stack(item.GoldenPickaxe)
	worn.Damage = 40
	inv.SetItem(30, worn)
	inv.SetItem(5, stack(item.IronShovel))

	sc := Scorer{ItemSaver: true}
	first, ok := sc.BestToolAgainst(inv, stone, item.ToolFamilyPickaxe)
	if !ok || first != 12 {
		t.Fatalf("best = %d %v, want 12", first, ok)
	}
	// Repeated calls without mutation agree.
	for range 10 {
		if got, _ := sc.BestToolAgainst(inv, stone, item.ToolFamilyPickaxe); got != first {
			t.Fatalf("ranking changed: %d then %d", first, got)
		}
	}

	sc.ItemSaver = false
	if got, _ := sc.BestToolAgainst(inv, stone, item.ToolFamilyPickaxe); got != 30 {
		t.Errorf("without item saver the golden pickaxe wins, got %d", got)
	}

	if _, ok := sc.BestToolAgainst(inv, stone, item.ToolFamilyAxe); ok {
		t.Errorf("no axe in inventory, expected none")
	}
}

func TestBreakTicks(t *testing.T) {
	if got := BreakTicks(stone, 6); got != 8 {
		t.Errorf("stone at speed 6 = %v, want 8", got)
	}
	if got := BreakTicks(world.Default(world.BlockTypeTorch), 1); got != 0 {
		t.Errorf("torch = %v", got)
	}
	if got := BreakTicks(world.Default(world.BlockTypeBedrock), 100); !math.IsInf(got, 1) {
		t.Errorf("bedrock = %v", got)
	}
}

func TestToolSet(t *testing.T) {
	inv := inventory.New()
	inv.SetItem(0, stack(item.IronPickaxe))
	inv.SetItem(4, stack(item.IronPickaxe))
	inv.SetItem(6, stack(item.IronShovel))

	ts := NewToolSet(false)
	inv.SetCurrentItem(4)
	if got := ts.BestSlot(inv, stone); got != 4 {
		t.Errorf("tie must keep the selected slot, got %d", got)
	}
	inv.SetCurrentItem(2)
	if got := ts.BestSlot(inv, stone); got != 0 {
		t.Errorf("best slot for stone = %d", got)
	}
	if got := ts.BestSlot(inv, world.Default(world.BlockTypeDirt)); got != 6 {
		t.Errorf("best slot for dirt = %d", got)
	}

	n := ts.CacheLen()
	ts.BestSlot(inv, stone)
	if ts.CacheLen() != n {
		t.Errorf("repeat lookup grew the cache from %d to %d", n, ts.CacheLen())
	}

	slot, ticks := ts.BreakTicksFor(inv, stone)
	if slot != 0 || ticks != 8 {
		t.Errorf("BreakTicksFor = %d, %v", slot, ticks)
	}
}
