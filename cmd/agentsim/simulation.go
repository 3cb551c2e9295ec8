package main

import (
	"log"
	"math/rand"

	"mini-fortress/internal/agent"
	"mini-fortress/internal/behavior"
	"mini-fortress/internal/controller"
	"mini-fortress/internal/entity"
	"mini-fortress/internal/inventory"
	"mini-fortress/internal/item"
	"mini-fortress/internal/placer"
	"mini-fortress/internal/profiling"
	"mini-fortress/internal/registry"
	"mini-fortress/internal/settings"
	"mini-fortress/internal/tools"
	"mini-fortress/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// blueprint is a fixed build plan.
type blueprint map[world.BlockPos]world.BlockState

func (b blueprint) PlaceAt(pos world.BlockPos, current world.BlockState) (world.BlockState, bool) {
	want, ok := b[pos]
	if !ok || want == current {
		return world.BlockState{}, false
	}
	return want, true
}

type goal struct {
	name string
	// step aims the worker and reports whether it wants to right click and whether the goal is met.
	step func() (click, done bool)
}

type simulation struct {
	world     *world.World
	worker    *entity.Worker
	inventory *behavior.Inventory
	ctrl      *controller.Controller
	helper    *placer.Helper
	toolset   *tools.ToolSet
	settings  *settings.Store
	logger    *log.Logger

	goals   []goal
	current int
	started int
}

var (
	doorPos   = world.Pos(3, 2, 0)
	gatePos   = world.Pos(0, 2, 3)
	buildPos  = world.Pos(-1, 2, -3)
	poolPos   = world.Pos(-3, 1, 0)
	pourFloor = world.Pos(-2, 1, 2)
	grassPos  = world.Pos(1, 2, -2)
)

func newSimulation(store *settings.Store, rng *rand.Rand, logger *log.Logger) (*simulation, error) {
	w := world.New(world.Overworld)
	w.Fill(world.Pos(-6, 1, -6), world.Pos(6, 1, 6), world.Default(world.BlockTypeStone))
	w.Set(doorPos, world.BlockTypeOakDoor)
	w.Set(gatePos, world.BlockTypeOakFenceGate)
	w.SetBlockState(poolPos, world.FluidWater.Still().BlockState(), 0)
	w.Set(grassPos, world.BlockTypeTallGrass)

	wk := entity.NewWorker("worker-1", mgl32.Vec3{0.5, 2, 0.5})
	wk.Profession = "builder"
	inv := wk.Inventory()
	for slot, s := range map[int]item.ItemStack{
		3:  item.NewItemStack(item.Torch, 16),
		11: item.NewItemStack(item.OakLog, 8),
		14: item.NewItemStack(item.IronPickaxe, 1),
		20: item.NewItemStack(item.Cobblestone, 32),
		25: item.NewItemStack(item.Bucket, 1),
	} {
		inv.SetItem(slot, &s)
	}

	plan := blueprint{buildPos: world.Default(world.BlockTypeCobblestone)}
	c, err := newCrew(wk, w, store, plan, rng, logger)
	if err != nil {
		return nil, err
	}

	w.OnBlockChange(func(ch world.BlockChange) {
		logger.Printf("block %v: %s -> %s", ch.Pos, registry.Lookup(ch.Old.Type).Name, registry.Lookup(ch.New.Type).Name)
	})

	sim := &simulation{
		world:     w,
		worker:    wk,
		inventory: c.inventory,
		ctrl:      c.ctrl,
		helper:    c.helper,
		toolset:   tools.NewToolSet(store.ItemSaver()),
		settings:  store,
		logger:    logger,
	}
	sim.goals = []goal{
		{"open door", sim.openGoal(doorPos)},
		{"open gate", sim.openGoal(gatePos)},
		{"place block", sim.buildGoal},
		{"fill bucket", sim.drainGoal},
		{"pour water", sim.pourGoal},
		{"clear grass", sim.clearGoal},
	}
	return sim, nil
}

// crew is the decision stack acting for one entity.
type crew struct {
	agent     agent.Agent
	inventory *behavior.Inventory
	ctrl      *controller.Controller
	helper    *placer.Helper
}

// newCrew builds the agent view of e and the components acting through it.
// Entities that cannot act are rejected before anything is built.
func newCrew(e entity.Entity, w *world.World, store *settings.Store, plan behavior.Planner, rng *rand.Rand, logger *log.Logger) (crew, error) {
	a, err := agent.Of(e)
	if err != nil {
		return crew{}, err
	}
	ib, err := behavior.New(a, w, store, plan, rng)
	if err != nil {
		return crew{}, err
	}
	ib.Logger = logger
	ctrl := controller.New(a, w, rng)
	ctrl.Logger = logger
	return crew{agent: a, inventory: ib, ctrl: ctrl, helper: placer.New(ctrl, store)}, nil
}

// Tick advances the worker one tick. It reports whether every goal is met.
func (s *simulation) Tick(tick int) bool {
	defer profiling.Track("agentsim.Tick")()

	s.worker.Update(1.0 / tickRate)
	s.inventory.OnTick()
	if s.current >= len(s.goals) {
		return true
	}
	g := s.goals[s.current]
	click, done := g.step()
	if done {
		s.logger.Printf("tick %d: %q done in %d ticks", tick, g.name, tick-s.started)
		s.current++
		s.started = tick
		return s.current >= len(s.goals)
	}
	s.helper.Tick(click)
	return false
}

func (s *simulation) openGoal(p world.BlockPos) func() (bool, bool) {
	return func() (bool, bool) {
		if s.world.BlockState(p).Open {
			return false, true
		}
		s.worker.LookAt(p.Center())
		return true, false
	}
}

func (s *simulation) buildGoal() (bool, bool) {
	if !s.world.IsAir(buildPos) {
		return false, true
	}
	if !s.inventory.SelectThrowawayForLocation(true, buildPos) {
		s.logger.Printf("nothing to place at %v", buildPos)
		return false, true
	}
	s.lookAtTop(buildPos.Offset(world.FaceBottom))
	return true, false
}

func (s *simulation) holdBucket() bool {
	slot := s.inventory.SlotWithTag(item.TagBuckets)
	if slot < 0 {
		return false
	}
	if slot >= inventory.HotbarSize && !s.inventory.AttemptToPutOnHotbar(slot, nil) {
		return false
	}
	return s.inventory.Throwaway(true, func(st *item.ItemStack) bool {
		return st.IsIn(item.TagBuckets)
	})
}

func (s *simulation) drainGoal() (bool, bool) {
	if s.world.BlockState(poolPos).IsAir() {
		return false, true
	}
	if !s.holdBucket() {
		return false, true
	}
	s.lookAtTop(poolPos)
	return true, false
}

func (s *simulation) pourGoal() (bool, bool) {
	if s.world.BlockState(pourFloor.Offset(world.FaceTop)).IsLiquid() {
		return false, true
	}
	if !s.holdBucket() || s.worker.StackInHand(entity.MainHand).Def().Fluid != world.FluidWater {
		return false, true
	}
	s.lookAtTop(pourFloor)
	return true, false
}

func (s *simulation) clearGoal() (bool, bool) {
	if s.world.IsAir(grassPos) {
		return false, true
	}
	if !s.ctrl.ClickBlock(grassPos, world.FaceTop) {
		s.logger.Printf("%v does not break instantly", grassPos)
		return false, true
	}
	return false, false
}

// lookAtTop aims at the middle of the top face of p.
func (s *simulation) lookAtTop(p world.BlockPos) {
	s.worker.LookAt(p.Center().Add(mgl32.Vec3{0, 0.45, 0}))
}

// Report logs the final state of the worker.
func (s *simulation) Report() {
	inv := s.worker.Inventory()
	for i := range inv.Size() {
		if st := inv.GetItem(i); !st.IsEmpty() {
			s.logger.Printf("slot %2d: %s x%d", i, st.Def().Name, st.Count)
		}
	}
	stone := world.Default(world.BlockTypeStone)
	s.toolset.SetItemSaver(s.settings.ItemSaver())
	slot, ticks := s.toolset.BreakTicksFor(inv, stone)
	s.logger.Printf("best hotbar slot against stone: %d (%v ticks)", slot, ticks)
	s.logger.Printf("particles: %d, drops: %d", len(s.world.Particles()), len(s.world.Drops()))
	chunks, blocks, changes := s.world.Stats()
	s.logger.Printf("world: %d chunks, %d blocks, %d changes", chunks, blocks, changes)
}
