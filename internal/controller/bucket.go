package controller

import (
	"mini-fortress/internal/entity"
	"mini-fortress/internal/item"
	"mini-fortress/internal/physics"
	"mini-fortress/internal/profiling"
	"mini-fortress/internal/registry"
	"mini-fortress/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// ProcessRightClick simulates a right click into the air with hand. Only buckets
// react: an empty bucket picks up the source fluid it looks at, a full one pours.
func (c *Controller) ProcessRightClick(hand entity.Hand) Result {
	defer profiling.Track("controller.ProcessRightClick")()

	held := c.agent.StackInHand(hand)
	if !held.IsIn(item.TagBuckets) {
		return ResultFail
	}
	fluid := held.Def().Fluid

	mode := physics.FluidNone
	if fluid == world.FluidEmpty {
		mode = physics.FluidSourceOnly
	}
	hit := c.MouseOver(mode)
	if hit.Type != physics.HitBlock {
		return Result{Kind: Pass, Stack: held}
	}

	s := c.world.BlockState(hit.Pos)
	if fluid == world.FluidEmpty {
		drained := registry.TryDrainFluid(c.world, hit.Pos, s)
		if drained == world.FluidEmpty {
			return Result{Kind: Fail, Stack: held}
		}
		filled := item.NewItemStack(item.BucketFor(drained), 1)
		return Result{Kind: Consume, Stack: c.exchange(hand, held, filled)}
	}

	target := hit.Adjacent()
	if registry.IsFluidFillable(s) && fluid == world.FluidWater {
		target = hit.Pos
	}
	if !c.PlaceFluid(target, &hit, fluid) {
		return Result{Kind: Fail, Stack: held}
	}
	empty := item.NewItemStack(item.Bucket, 1)
	return Result{Kind: Consume, Stack: &empty}
}

// exchange puts a filled bucket in hand in place of one empty bucket.
func (c *Controller) exchange(hand entity.Hand, held *item.ItemStack, filled item.ItemStack) *item.ItemStack {
	if held.Count <= 1 {
		c.agent.SetStackInHand(hand, &filled)
		return &filled
	}
	held.Count--
	if !c.agent.Inventory().AddItem(&filled) {
		c.logf("%s: no room for %s, discarded", c.agent.ID(), filled.Def().Name)
	}
	return held
}

// PlaceFluid pours fluid at pos. When pos cannot take fluid and hit is set, it
// tries once more in front of the hit face.
func (c *Controller) PlaceFluid(pos world.BlockPos, hit *physics.Hit, fluid world.Fluid) bool {
	return c.placeFluid(pos, hit, fluid, fluidRetries)
}

func (c *Controller) placeFluid(pos world.BlockPos, hit *physics.Hit, fluid world.Fluid, retries int) bool {
	if !fluid.Flowable() {
		return false
	}
	s := c.world.BlockState(pos)
	bucketPlace := registry.CanBucketPlace(s, fluid)
	fillable := registry.IsFluidFillable(s)

	if !s.IsAir() && !bucketPlace && !fillable {
		if hit == nil || retries <= 0 {
			return false
		}
		return c.placeFluid(hit.Adjacent(), nil, fluid, retries-1)
	}

	if c.world.Dimension().Ultrawarm && fluid.IsIn(world.TagWater) {
		base := pos.Vec()
		for range VaporizeParticles {
			off := mgl32.Vec3{float32(c.rng.Float64()), float32(c.rng.Float64()), float32(c.rng.Float64())}
			c.world.AddParticle(world.ParticleLargeSmoke, base.Add(off), mgl32.Vec3{})
		}
		c.logf("%s: water vaporized at %v", c.agent.ID(), pos)
		return true
	}

	flowing := fluid.Flowing(3, false)
	if fillable && fluid == world.FluidWater {
		registry.TryFillWithFluid(c.world, pos, s, flowing)
		return true
	}

	if bucketPlace && !s.FluidState().IsEmpty() {
		c.world.BreakBlock(pos, true, c.agent.ID())
	}
	return c.world.SetBlockState(pos, flowing.BlockState(), world.ReplaceFlags)
}

// ClickBlock breaks blocks with zero or negative hardness on the spot. Anything
// harder is left alone and reported as not broken.
func (c *Controller) ClickBlock(pos world.BlockPos, face world.BlockFace) bool {
	defer profiling.Track("controller.ClickBlock")()

	s := c.world.BlockState(pos)
	if s.IsAir() {
		return false
	}
	if registry.Hardness(s) > 0 {
		return false
	}
	c.world.BreakBlock(pos, true, c.agent.ID())
	c.agent.Vitals().AddExhaustion(BreakExhaustion)
	if c.agent.Player() != nil {
		registry.OnBreak(c.world, pos, s)
	}
	return true
}
