// Package controller simulates right clicks and instant breaks for agents without a real input device.
package controller

import (
	"log"
	"math/rand"

	"mini-fortress/internal/agent"
	"mini-fortress/internal/entity"
	"mini-fortress/internal/item"
	"mini-fortress/internal/physics"
	"mini-fortress/internal/profiling"
	"mini-fortress/internal/registry"
	"mini-fortress/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	BlockReachDistance = 5.0

	// FenceGateFlags are the update flags used when a worker swings a gate open.
	FenceGateFlags = world.NotifyListeners | world.Redraw

	// VaporizeParticles is the number of smoke puffs water leaves in an ultrawarm dimension.
	VaporizeParticles = 8

	// BreakExhaustion is the hunger a broken block costs.
	BreakExhaustion = 0.005

	// fluidRetries bounds how often PlaceFluid moves on to the block in front of the hit face.
	fluidRetries = 1
)

// World is the part of the world the controller reads and changes.
type World interface {
	registry.BlockAccess
	BreakBlock(p world.BlockPos, drop bool, breaker string) bool
	AddParticle(kind world.ParticleKind, pos, vel mgl32.Vec3)
	AddBlockParticle(s world.BlockState, pos mgl32.Vec3)
	Dimension() world.Dimension
	BlockEntity(p world.BlockPos) any
}

// Controller acts for one agent. It never mines over time.
type Controller struct {
	agent  agent.Agent
	world  World
	rng    *rand.Rand
	Logger *log.Logger
}

func New(a agent.Agent, w World, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Controller{agent: a, world: w, rng: rng}
}

func (c *Controller) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

func (c *Controller) Agent() agent.Agent { return c.agent }

func (c *Controller) BlockReachDistance() float64 { return BlockReachDistance }

func (c *Controller) HasBrokenBlock() bool { return false }

func (c *Controller) OnPlayerDamageBlock(pos world.BlockPos, side world.BlockFace) bool { return false }

func (c *Controller) ResetBlockRemoving() {}

func (c *Controller) SetHittingBlock(hitting bool) {}

func (c *Controller) GameMode() entity.GameMode { return entity.GameModeSurvival }

// MouseOver is the block the agent looks at within reach.
func (c *Controller) MouseOver(mode physics.FluidHandling) physics.Hit {
	return physics.Raycast(c.world, c.agent.GetEyePosition(), c.agent.GetFrontVector(), BlockReachDistance, mode)
}

// ProcessRightClickBlock simulates a right click with hand on the block of hit.
// Doors, trapdoors and fence gates react to either hand; anything else is the
// main hand's item used on the block.
func (c *Controller) ProcessRightClickBlock(hand entity.Hand, hit physics.Hit) Result {
	defer profiling.Track("controller.ProcessRightClickBlock")()

	pos := hit.Pos
	s := c.world.BlockState(pos)

	switch {
	case registry.IsDoor(s):
		if registry.CanOpenByHand(c.world, pos) {
			registry.SetOpen(c.world, pos, s, true)
			return ResultSuccess
		}
	case registry.IsTrapdoor(s):
		if registry.CanOpenByHand(c.world, pos) && registry.OnUse(c.world, pos, s) {
			return ResultConsume
		}
	case registry.IsFenceGate(s):
		c.world.SetBlockState(pos, s.WithOpen(true), FenceGateFlags)
		return ResultSuccess
	}

	if hand != entity.MainHand {
		return ResultFail
	}

	// The probe is a copy; using it never touches the stack in hand.
	probe := c.agent.StackInHand(hand).Copy()
	res := c.useOnBlock(probe, hit)
	if res.Accepted() {
		finalPos := pos
		if !registry.IsReplaceable(s) {
			finalPos = pos.Offset(hit.Face)
		}
		c.notifyPlacer(finalPos)
	}
	return res
}

func (c *Controller) notifyPlacer(pos world.BlockPos) {
	if !agent.Autonomous(c.agent) {
		return
	}
	if be, ok := c.world.BlockEntity(pos).(world.PlacerAware); ok {
		be.SetPlacer(c.agent.ID())
	}
}

// useOnBlock is the generic on-block use of an item. Only block items do
// anything: they place their block against the clicked face.
func (c *Controller) useOnBlock(stack *item.ItemStack, hit physics.Hit) Result {
	t, ok := stack.Block()
	if !ok {
		return ResultPass
	}
	clicked := c.world.BlockState(hit.Pos)
	dest := hit.Pos
	if !registry.IsReplaceable(clicked) {
		dest = hit.Pos.Offset(hit.Face)
	}
	existing := c.world.BlockState(dest)
	if !registry.IsReplaceable(existing) {
		return ResultFail
	}
	width, height := c.agent.GetBounds()
	if registry.Lookup(t).IsSolid && physics.IntersectsBlock(c.agent.Position(), width, height, dest) {
		return ResultFail
	}

	yaw, _ := c.agent.Rotation()
	state := registry.PlacementState(t, registry.PlacementContext{
		Facing:   world.HorizontalFacing(yaw),
		Side:     hit.Face,
		Existing: existing,
	})
	if !c.world.SetBlockState(dest, state, world.NotifyAll) {
		return ResultFail
	}
	stack.Count--
	return ResultConsume
}
