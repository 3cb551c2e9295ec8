package registry

import (
	"mini-fortress/internal/item"
	"mini-fortress/internal/world"
)

// BlockKind selects the interaction behavior of a block.
type BlockKind int

const (
	KindPlain BlockKind = iota
	KindDoor
	KindTrapdoor
	KindFenceGate
	KindFluid
)

// BlockDefinition defines the properties of a block type
type BlockDefinition struct {
	ID       world.BlockType
	Name     string
	Kind     BlockKind
	IsSolid  bool
	Hardness float32 // negative means unbreakable

	// PreferredTool is the tool family that mines the block at full speed.
	PreferredTool item.ToolFamily
	// Replaceable blocks are overwritten by placement instead of placed against.
	Replaceable bool
	// OpenableByHand is false for redstone-only doors and trapdoors.
	OpenableByHand bool
	// FluidFillable blocks take water in without being replaced (waterlogging).
	FluidFillable bool
	// HasFacing blocks take the placer's horizontal facing when placed.
	HasFacing bool
	Fluid     world.Fluid

	// Drop Logic
	GetItemDropped func() item.ID
}

var (
	Blocks     = make(map[world.BlockType]*BlockDefinition)
	BlockNames = make(map[string]world.BlockType)
)

func RegisterBlock(def *BlockDefinition) {
	if def.GetItemDropped == nil {
		id, ok := item.ForBlock(def.ID)
		def.GetItemDropped = func() item.ID {
			if !ok {
				return item.Air
			}
			return id
		}
	}
	Blocks[def.ID] = def
	BlockNames[def.Name] = def.ID
}

// Lookup returns the definition for t. Unknown types resolve to air.
func Lookup(t world.BlockType) *BlockDefinition {
	if def, ok := Blocks[t]; ok {
		return def
	}
	return Blocks[world.BlockTypeAir]
}

func init() {
	InitRegistry()
}

func InitRegistry() {
	RegisterBlock(&BlockDefinition{
		ID:          world.BlockTypeAir,
		Name:        "air",
		Replaceable: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:          world.BlockTypeWater,
		Name:        "water",
		Kind:        KindFluid,
		Hardness:    100.0, // Cannot be mined
		Replaceable: true,
		Fluid:       world.FluidWater,
	})

	RegisterBlock(&BlockDefinition{
		ID:          world.BlockTypeLava,
		Name:        "lava",
		Kind:        KindFluid,
		Hardness:    100.0,
		Replaceable: true,
		Fluid:       world.FluidLava,
	})

	solid := []struct {
		id       world.BlockType
		name     string
		hardness float32
		tool     item.ToolFamily
	}{
		{world.BlockTypeCobblestone, "cobblestone", 2.0, item.ToolFamilyPickaxe},
		{world.BlockTypeNetherrack, "netherrack", 0.4, item.ToolFamilyPickaxe},
		{world.BlockTypeDirt, "dirt", 0.5, item.ToolFamilyShovel},
		{world.BlockTypeGrass, "grass", 0.6, item.ToolFamilyShovel},
		{world.BlockTypeSand, "sand", 0.5, item.ToolFamilyShovel},
		{world.BlockTypeGravel, "gravel", 0.6, item.ToolFamilyShovel},
		{world.BlockTypeOakPlanks, "oak_planks", 2.0, item.ToolFamilyAxe},
		{world.BlockTypeOakLog, "oak_log", 2.0, item.ToolFamilyAxe},
		{world.BlockTypeGlass, "glass", 0.3, item.ToolFamilyNone},
		{world.BlockTypeBedrock, "bedrock", -1.0, item.ToolFamilyNone}, // Unbreakable
	}
	for _, s := range solid {
		RegisterBlock(&BlockDefinition{
			ID:            s.id,
			Name:          s.name,
			IsSolid:       true,
			Hardness:      s.hardness,
			PreferredTool: s.tool,
		})
	}

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeStone,
		Name:          "stone",
		IsSolid:       true,
		Hardness:      1.5,
		PreferredTool: item.ToolFamilyPickaxe,
		GetItemDropped: func() item.ID {
			return item.Cobblestone
		},
	})

	RegisterBlock(&BlockDefinition{
		ID:          world.BlockTypeTallGrass,
		Name:        "tall_grass",
		Hardness:    0,
		Replaceable: true,
		GetItemDropped: func() item.ID {
			return item.Air
		},
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypeTorch,
		Name:     "torch",
		Hardness: 0,
	})

	RegisterBlock(&BlockDefinition{
		ID:             world.BlockTypeOakDoor,
		Name:           "oak_door",
		Kind:           KindDoor,
		IsSolid:        true,
		Hardness:       3.0,
		PreferredTool:  item.ToolFamilyAxe,
		OpenableByHand: true,
		HasFacing:      true,
	})

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeIronDoor,
		Name:          "iron_door",
		Kind:          KindDoor,
		IsSolid:       true,
		Hardness:      5.0,
		PreferredTool: item.ToolFamilyPickaxe,
		HasFacing:     true,
	})

	RegisterBlock(&BlockDefinition{
		ID:             world.BlockTypeOakTrapdoor,
		Name:           "oak_trapdoor",
		Kind:           KindTrapdoor,
		IsSolid:        true,
		Hardness:       3.0,
		PreferredTool:  item.ToolFamilyAxe,
		OpenableByHand: true,
		FluidFillable:  true,
		HasFacing:      true,
	})

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeIronTrapdoor,
		Name:          "iron_trapdoor",
		Kind:          KindTrapdoor,
		IsSolid:       true,
		Hardness:      5.0,
		PreferredTool: item.ToolFamilyPickaxe,
		FluidFillable: true,
		HasFacing:     true,
	})

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeOakFenceGate,
		Name:          "oak_fence_gate",
		Kind:          KindFenceGate,
		IsSolid:       true,
		Hardness:      2.0,
		PreferredTool: item.ToolFamilyAxe,
		HasFacing:     true,
	})

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeOakSlab,
		Name:          "oak_slab",
		IsSolid:       true,
		Hardness:      2.0,
		PreferredTool: item.ToolFamilyAxe,
		FluidFillable: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeChest,
		Name:          "chest",
		IsSolid:       true,
		Hardness:      2.5,
		PreferredTool: item.ToolFamilyAxe,
		FluidFillable: true,
		HasFacing:     true,
	})
}
