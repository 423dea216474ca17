package entities

import (
	"testing"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/utils"
)

func TestEnemyTemplateIsDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Enemy

	template, err := NewEnemyTemplate(em, cfg)
	if err != nil {
		t.Fatalf("NewEnemyTemplate failed: %v", err)
	}

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, template)
	if col.Enabled {
		t.Error("template collider should be disabled")
	}
	nav, _ := ecs.GetComponent[*components.NavigationComponent](em, template)
	if nav.Enabled {
		t.Error("template navigation should be disabled")
	}
	if !ecs.HasComponent[*components.TemplateComponent](em, template) {
		t.Error("template should carry TemplateComponent")
	}
}

func TestEnemyFactorySpawnEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Enemy

	factory, err := NewEnemyFactory(em, cfg)
	if err != nil {
		t.Fatalf("NewEnemyFactory failed: %v", err)
	}

	pos := utils.Vec3{X: 5, Z: -7}
	id, err := factory.SpawnEnemy(pos)
	if err != nil {
		t.Fatalf("SpawnEnemy failed: %v", err)
	}
	if id == factory.Template() {
		t.Fatal("spawned enemy must not be the template")
	}

	if ecs.HasComponent[*components.TemplateComponent](em, id) {
		t.Error("clone should not carry TemplateComponent")
	}

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if tr.Position != pos {
		t.Errorf("position: got %v, want %v", tr.Position, pos)
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if health.CurrentHealth != cfg.BaseHealth {
		t.Errorf("health: got %v, want %v", health.CurrentHealth, cfg.BaseHealth)
	}

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	if enemy.State != components.EnemyPursuing {
		t.Errorf("state: got %v, want Pursuing", enemy.State)
	}
	if enemy.AttackDelay != cfg.AttackDelay || enemy.AttackDamage != cfg.AttackDamage {
		t.Errorf("attack stats not copied: %+v", enemy)
	}

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !col.Enabled || col.Kind != components.ColliderEnemy {
		t.Errorf("collider: got %+v", col)
	}

	// 修改克隆体不影响模板
	health.CurrentHealth = 1
	templateHealth, _ := ecs.GetComponent[*components.HealthComponent](em, factory.Template())
	if templateHealth.CurrentHealth != cfg.BaseHealth {
		t.Error("template health changed after mutating clone")
	}

	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	if !anim.Bools[components.AnimIsWalking] {
		t.Error("new enemy should start with walking animation")
	}
}

func TestCloneEnemyRejectsNonTemplate(t *testing.T) {
	em := ecs.NewEntityManager()
	plain := em.CreateEntity()

	if _, err := CloneEnemy(em, plain, utils.Vec3{}); err == nil {
		t.Error("expected error when cloning a non-template entity")
	}
}
