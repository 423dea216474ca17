package systems

import (
	"testing"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/utils"
)

func newNavAgent(em *ecs.EntityManager, pos utils.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: pos, Forward: utils.Forward})
	ecs.AddComponent(em, id, &components.NavigationComponent{
		Enabled:          true,
		Speed:            2,
		StoppingDistance: 1,
	})
	return id
}

func TestNavigationMovesTowardsDestination(t *testing.T) {
	em := ecs.NewEntityManager()
	nav := NewNavigationSystem(em)
	id := newNavAgent(em, utils.Vec3{Y: 0.5})

	nav.SetDestination(id, utils.Vec3{X: 10, Y: 3})
	nav.Update(1)

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if !approx(tr.Position.X, 2) {
		t.Errorf("X after 1s: got %v, want 2", tr.Position.X)
	}
	if tr.Position.Y != 0.5 {
		t.Errorf("Y should stay at 0.5, got %v", tr.Position.Y)
	}
	if !approx(tr.Forward.X, 1) {
		t.Errorf("Forward should face +X, got %v", tr.Forward)
	}

	// 在停止距离处停下
	nav.Update(10)
	if !approx(tr.Position.X, 9) {
		t.Errorf("X after arriving: got %v, want 9", tr.Position.X)
	}
	nav.Update(1)
	if !approx(tr.Position.X, 9) {
		t.Errorf("agent moved inside stopping distance: %v", tr.Position.X)
	}
}

func TestNavigationStopAndDisable(t *testing.T) {
	tests := []struct {
		name  string
		apply func(nav *NavigationSystem, id ecs.EntityID)
	}{
		{"暂停", func(nav *NavigationSystem, id ecs.EntityID) {
			nav.SetDestination(id, utils.Vec3{X: 10})
			nav.Stop(id, true)
		}},
		{"禁用", func(nav *NavigationSystem, id ecs.EntityID) {
			nav.SetDestination(id, utils.Vec3{X: 10})
			nav.Disable(id)
		}},
		{"禁用后设置目标", func(nav *NavigationSystem, id ecs.EntityID) {
			nav.Disable(id)
			nav.SetDestination(id, utils.Vec3{X: 10})
			nav.Stop(id, false)
		}},
		{"没有目标", func(nav *NavigationSystem, id ecs.EntityID) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			nav := NewNavigationSystem(em)
			id := newNavAgent(em, utils.Zero)

			tt.apply(nav, id)
			nav.Update(1)

			tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
			if tr.Position != utils.Zero {
				t.Errorf("agent should not move, got %v", tr.Position)
			}
		})
	}
}

func TestNavigationResumeAfterStop(t *testing.T) {
	em := ecs.NewEntityManager()
	nav := NewNavigationSystem(em)
	id := newNavAgent(em, utils.Zero)

	nav.SetDestination(id, utils.Vec3{Z: 10})
	nav.Stop(id, true)
	nav.Update(1)
	nav.Stop(id, false)
	nav.Update(1)

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if !approx(tr.Position.Z, 2) {
		t.Errorf("Z: got %v, want 2", tr.Position.Z)
	}
}
