package agent_test

import (
	"errors"
	"testing"

	"mini-fortress/internal/agent"
	"mini-fortress/internal/entity"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOfPlayer(t *testing.T) {
	p := entity.NewPlayer("steve", mgl32.Vec3{}, entity.GameModeSurvival)
	a, err := agent.Of(p)
	if err != nil {
		t.Fatalf("Of(player): %v", err)
	}
	if a.Player() != p {
		t.Errorf("expected the player identity to be kept")
	}
	if agent.Autonomous(a) {
		t.Errorf("player agent reported autonomous")
	}
	a.SelectSlot(3)
	if p.Inventory.CurrentItem != 3 || a.SelectedSlot() != 3 {
		t.Errorf("selection not routed to the player inventory: %d", p.Inventory.CurrentItem)
	}
	if a.Inventory() != p.Inventory {
		t.Errorf("inventory mismatch")
	}
	a.Vitals().FoodLevel = 7
	if p.Vitals.FoodLevel != 7 {
		t.Errorf("vitals not shared with the player")
	}
}

func TestOfWorker(t *testing.T) {
	w := entity.NewWorker("w1", mgl32.Vec3{})
	a, err := agent.Of(w)
	if err != nil {
		t.Fatalf("Of(worker): %v", err)
	}
	if !agent.Autonomous(a) {
		t.Errorf("worker must be autonomous")
	}
	a.SelectSlot(8)
	if w.SelectedSlot() != 8 {
		t.Errorf("selected = %d", w.SelectedSlot())
	}
}

func TestOfUnsupported(t *testing.T) {
	tests := []struct {
		name string
		e    entity.Entity
	}{
		{"boat", entity.NewBoat("b1", mgl32.Vec3{})},
		{"nil player", (*entity.Player)(nil)},
		{"nil worker", (*entity.Worker)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := agent.Of(tt.e)
			if !errors.Is(err, agent.ErrUnsupportedEntity) {
				t.Fatalf("expected ErrUnsupportedEntity, got %v", err)
			}
			if a != nil {
				t.Errorf("expected no agent, got %v", a)
			}
		})
	}
}

func TestMustOfPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, agent.ErrUnsupportedEntity) {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	agent.MustOf(entity.NewBoat("b1", mgl32.Vec3{}))
}
