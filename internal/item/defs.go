package item

import (
	"slices"

	"mini-fortress/internal/world"
)

// ID identifies an item type.
type ID uint16

const (
	Air ID = iota
	Stone
	Cobblestone
	Dirt
	Grass
	Sand
	Gravel
	OakLog
	OakPlanks
	Glass
	Netherrack
	Torch
	OakDoor
	IronDoor
	OakTrapdoor
	IronTrapdoor
	OakFenceGate
	OakSlab
	Chest
	WoodenPickaxe
	StonePickaxe
	IronPickaxe
	GoldenPickaxe
	DiamondPickaxe
	IronShovel
	IronAxe
	Bucket
	WaterBucket
	LavaBucket
	Stick
)

type Kind int

const (
	KindMaterial Kind = iota
	KindBlock
	KindTool
	KindBucket
)

// ToolFamily groups tools by the blocks they are effective against.
type ToolFamily int

const (
	ToolFamilyNone ToolFamily = iota
	ToolFamilyPickaxe
	ToolFamilyShovel
	ToolFamilyAxe
)

func (f ToolFamily) String() string {
	switch f {
	case ToolFamilyPickaxe:
		return "pickaxe"
	case ToolFamilyShovel:
		return "shovel"
	case ToolFamilyAxe:
		return "axe"
	}
	return "none"
}

// Item tags.
const (
	TagThrowaway = "throwaway"
	TagPickaxes  = "pickaxes"
	TagShovels   = "shovels"
	TagAxes      = "axes"
	TagBuckets   = "buckets"
)

// Def describes an item type.
type Def struct {
	ID        ID
	Name      string
	Kind      Kind
	Block     world.BlockType // placed block for KindBlock
	Family    ToolFamily
	Speed     float64 // mining speed against blocks of the family
	MaxDamage int
	Fluid     world.Fluid // carried fluid for KindBucket
	Tags      []string
}

func (d Def) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}

func (d Def) MaxStack() int {
	switch {
	case d.Kind == KindTool:
		return 1
	case d.Kind == KindBucket && d.Fluid != world.FluidEmpty:
		return 1
	case d.Kind == KindBucket:
		return 16
	}
	return 64
}

var (
	defs  = make(map[ID]Def)
	names = make(map[string]ID)
)

// Register adds or replaces an item definition.
func Register(d Def) {
	if d.Kind == KindTool {
		switch d.Family {
		case ToolFamilyPickaxe:
			d.Tags = appendTag(d.Tags, TagPickaxes)
		case ToolFamilyShovel:
			d.Tags = appendTag(d.Tags, TagShovels)
		case ToolFamilyAxe:
			d.Tags = appendTag(d.Tags, TagAxes)
		}
	}
	if d.Kind == KindBucket {
		d.Tags = appendTag(d.Tags, TagBuckets)
	}
	defs[d.ID] = d
	names[d.Name] = d.ID
}

func appendTag(tags []string, tag string) []string {
	if slices.Contains(tags, tag) {
		return tags
	}
	return append(tags, tag)
}

// Lookup returns the definition of id, or the air definition for unknown ids.
func Lookup(id ID) Def {
	if d, ok := defs[id]; ok {
		return d
	}
	return defs[Air]
}

// ByName resolves an item by its registry name.
func ByName(name string) (ID, bool) {
	id, ok := names[name]
	return id, ok
}

// ForBlock returns the block item that places t.
func ForBlock(t world.BlockType) (ID, bool) {
	for _, d := range defs {
		if d.Kind == KindBlock && d.Block == t {
			return d.ID, true
		}
	}
	return Air, false
}

// BucketFor returns the bucket item that carries f.
func BucketFor(f world.Fluid) ID {
	switch f {
	case world.FluidWater:
		return WaterBucket
	case world.FluidLava:
		return LavaBucket
	}
	return Bucket
}

func init() {
	Register(Def{ID: Air, Name: "air"})

	blocks := []struct {
		id    ID
		name  string
		block world.BlockType
		tags  []string
	}{
		{Stone, "stone", world.BlockTypeStone, []string{TagThrowaway}},
		{Cobblestone, "cobblestone", world.BlockTypeCobblestone, []string{TagThrowaway}},
		{Dirt, "dirt", world.BlockTypeDirt, []string{TagThrowaway}},
		{Grass, "grass", world.BlockTypeGrass, nil},
		{Sand, "sand", world.BlockTypeSand, nil},
		{Gravel, "gravel", world.BlockTypeGravel, nil},
		{OakLog, "oak_log", world.BlockTypeOakLog, nil},
		{OakPlanks, "oak_planks", world.BlockTypeOakPlanks, nil},
		{Glass, "glass", world.BlockTypeGlass, nil},
		{Netherrack, "netherrack", world.BlockTypeNetherrack, []string{TagThrowaway}},
		{Torch, "torch", world.BlockTypeTorch, nil},
		{OakDoor, "oak_door", world.BlockTypeOakDoor, nil},
		{IronDoor, "iron_door", world.BlockTypeIronDoor, nil},
		{OakTrapdoor, "oak_trapdoor", world.BlockTypeOakTrapdoor, nil},
		{IronTrapdoor, "iron_trapdoor", world.BlockTypeIronTrapdoor, nil},
		{OakFenceGate, "oak_fence_gate", world.BlockTypeOakFenceGate, nil},
		{OakSlab, "oak_slab", world.BlockTypeOakSlab, nil},
		{Chest, "chest", world.BlockTypeChest, nil},
	}
	for _, b := range blocks {
		Register(Def{ID: b.id, Name: b.name, Kind: KindBlock, Block: b.block, Tags: b.tags})
	}

	// Tool speeds and durabilities follow the vanilla tiers.
	Register(Def{ID: WoodenPickaxe, Name: "wooden_pickaxe", Kind: KindTool, Family: ToolFamilyPickaxe, Speed: 2, MaxDamage: 59})
	Register(Def{ID: StonePickaxe, Name: "stone_pickaxe", Kind: KindTool, Family: ToolFamilyPickaxe, Speed: 4, MaxDamage: 131})
	Register(Def{ID: IronPickaxe, Name: "iron_pickaxe", Kind: KindTool, Family: ToolFamilyPickaxe, Speed: 6, MaxDamage: 250})
	Register(Def{ID: GoldenPickaxe, Name: "golden_pickaxe", Kind: KindTool, Family: ToolFamilyPickaxe, Speed: 12, MaxDamage: 32})
	Register(Def{ID: DiamondPickaxe, Name: "diamond_pickaxe", Kind: KindTool, Family: ToolFamilyPickaxe, Speed: 8, MaxDamage: 1561})
	Register(Def{ID: IronShovel, Name: "iron_shovel", Kind: KindTool, Family: ToolFamilyShovel, Speed: 6, MaxDamage: 250})
	Register(Def{ID: IronAxe, Name: "iron_axe", Kind: KindTool, Family: ToolFamilyAxe, Speed: 6, MaxDamage: 250})

	Register(Def{ID: Bucket, Name: "bucket", Kind: KindBucket, Fluid: world.FluidEmpty})
	Register(Def{ID: WaterBucket, Name: "water_bucket", Kind: KindBucket, Fluid: world.FluidWater})
	Register(Def{ID: LavaBucket, Name: "lava_bucket", Kind: KindBucket, Fluid: world.FluidLava})

	Register(Def{ID: Stick, Name: "stick"})
}
