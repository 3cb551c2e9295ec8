package entity

import (
	"testing"

	"mini-fortress/internal/inventory"
	"mini-fortress/internal/item"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-5)
}

func TestLookVector(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float32
		want       mgl32.Vec3
	}{
		{"south", 0, 0, mgl32.Vec3{0, 0, 1}},
		{"west", 90, 0, mgl32.Vec3{-1, 0, 0}},
		{"north", 180, 0, mgl32.Vec3{0, 0, -1}},
		{"east", 270, 0, mgl32.Vec3{1, 0, 0}},
		{"down", 0, 90, mgl32.Vec3{0, -1, 0}},
		{"up", 0, -90, mgl32.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LookVector(tt.yaw, tt.pitch); !near(got, tt.want) {
				t.Errorf("LookVector(%v, %v) = %v, want %v", tt.yaw, tt.pitch, got, tt.want)
			}
		})
	}
}

func TestEyePosition(t *testing.T) {
	w := NewWorker("w1", mgl32.Vec3{0.5, 1, 0.5})
	if got := w.GetEyePosition(); !near(got, mgl32.Vec3{0.5, 2.62, 0.5}) {
		t.Errorf("eye = %v", got)
	}
	w.IsSneaking = true
	if got := w.GetEyePosition(); !near(got, mgl32.Vec3{0.5, 2.54, 0.5}) {
		t.Errorf("sneaking eye = %v", got)
	}
}

func TestLookAt(t *testing.T) {
	w := NewWorker("w1", mgl32.Vec3{0.5, 0, 0.5})
	target := w.GetEyePosition().Add(mgl32.Vec3{-3, 0, 0})
	w.LookAt(target)
	if got := w.GetFrontVector(); !near(got, mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("front after LookAt = %v (yaw %v pitch %v)", got, w.Yaw, w.Pitch)
	}

	w.LookAt(w.GetEyePosition().Add(mgl32.Vec3{0, -2, 0}))
	if w.Pitch != 90 {
		t.Errorf("expected pitch 90 looking straight down, got %v", w.Pitch)
	}
}

func TestHands(t *testing.T) {
	p := NewPlayer("steve", mgl32.Vec3{}, GameModeSurvival)
	pick := item.NewItemStack(item.IronPickaxe, 1)
	p.SetStackInHand(MainHand, &pick)
	torch := item.NewItemStack(item.Torch, 12)
	p.SetStackInHand(OffHand, &torch)

	if got := p.StackInHand(MainHand); got != &pick {
		t.Errorf("main hand = %v", got)
	}
	if got := p.Inventory.GetItem(inventory.OffHandIndex); got != &torch {
		t.Errorf("off hand slot = %v", got)
	}

	p.SwingHand(OffHand)
	if p.Swings(OffHand) != 1 || p.Swings(MainHand) != 0 {
		t.Errorf("swings main=%d off=%d", p.Swings(MainHand), p.Swings(OffHand))
	}
	p.Update(0.125)
	if p.HandSwingProgress < 0.49 || p.HandSwingProgress > 0.51 {
		t.Errorf("swing progress = %v", p.HandSwingProgress)
	}
}

func TestWorkerSelectSlot(t *testing.T) {
	w := NewWorker("w1", mgl32.Vec3{})
	w.SelectSlot(4)
	if w.SelectedSlot() != 4 {
		t.Fatalf("selected = %d", w.SelectedSlot())
	}
	w.SelectSlot(9)
	if w.SelectedSlot() != 4 {
		t.Errorf("out of range selection must be ignored, got %d", w.SelectedSlot())
	}
}

func TestMount(t *testing.T) {
	w := NewWorker("w1", mgl32.Vec3{})
	b := NewBoat("b1", mgl32.Vec3{})
	w.Mount(b)
	if v, ok := w.Vehicle().(*Boat); !ok || v != b {
		t.Fatalf("vehicle = %v", w.Vehicle())
	}
	w.Mount(nil)
	if w.Vehicle() != nil {
		t.Errorf("expected dismount")
	}
}

func TestVitals(t *testing.T) {
	v := NewVitals()
	v.AddExhaustion(3)
	if v.Saturation != 2 || v.FoodLevel != 20 {
		t.Errorf("saturation should absorb first, got %+v", v)
	}
	v.AddExhaustion(4)
	if v.Saturation != 0 || v.FoodLevel != 18 {
		t.Errorf("expected food 18 once saturation ran out, got %+v", v)
	}
	v.AddExhaustion(100)
	if v.FoodLevel != 0 {
		t.Errorf("food must not go negative, got %v", v.FoodLevel)
	}

	p := NewPlayer("alex", mgl32.Vec3{}, GameModeCreative)
	p.ApplyDamage(5)
	if p.Vitals.Health != 20 {
		t.Errorf("creative players take no damage, got %v", p.Vitals.Health)
	}
	p.GameMode = GameModeSurvival
	p.ApplyDamage(25)
	if p.Vitals.Health != 0 {
		t.Errorf("health must not go negative, got %v", p.Vitals.Health)
	}
}
