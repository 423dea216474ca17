package systems

import (
	"testing"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/ecs"
)

func TestAnimationSystemParameters(t *testing.T) {
	em := ecs.NewEntityManager()
	anim := NewAnimationSystem(em, 2.5)
	id := em.CreateEntity()

	anim.SetBool(id, components.AnimIsAttacking, true)
	anim.SetInt(id, components.AnimAttackingAnimation, 2)

	if !anim.Bool(id, components.AnimIsAttacking) {
		t.Error("isAttacking should be true")
	}
	if anim.Int(id, components.AnimAttackingAnimation) != 2 {
		t.Errorf("attackingAnimation: got %d, want 2", anim.Int(id, components.AnimAttackingAnimation))
	}
	if anim.Bool(id, components.AnimIsDead) {
		t.Error("unset parameter should read false")
	}
	if !ecs.HasComponent[*components.AnimationComponent](em, id) {
		t.Error("SetBool should attach an AnimationComponent")
	}
	if anim.DeathAnimationDuration(id) != 2.5 {
		t.Errorf("death duration: got %v, want 2.5", anim.DeathAnimationDuration(id))
	}
}

func TestAnimationSystemIgnoresMissingEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	anim := NewAnimationSystem(em, 1)

	anim.SetBool(999, components.AnimIsDead, true)
	anim.SetInt(999, components.AnimAttackingAnimation, 1)

	if em.Exists(999) {
		t.Error("setting parameters must not create entities")
	}
	if anim.Bool(999, components.AnimIsDead) {
		t.Error("missing entity should read false")
	}
}
