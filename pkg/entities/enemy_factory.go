package entities

import (
	"fmt"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/utils"
)

// EnemyBodyHalfHeight 敌人受击碰撞盒半高（身高约 1.8 米）
const EnemyBodyHalfHeight = 0.9

// NewEnemyTemplate 创建敌人模板实体
// 模板保持禁用（碰撞体关闭、寻路禁用），只用于克隆新敌人
func NewEnemyTemplate(em *ecs.EntityManager, cfg config.EnemyConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.TemplateComponent{})
	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Forward: utils.Forward,
	})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		CurrentHealth: cfg.BaseHealth,
		MaxHealth:     cfg.BaseHealth,
	})
	ecs.AddComponent(em, entityID, &components.EnemyComponent{
		State:         components.EnemyPursuing,
		AttackDelay:   cfg.AttackDelay,
		AttackRange:   cfg.AttackRange,
		AttackDamage:  cfg.AttackDamage,
		TriggerRadius: cfg.TriggerRadius,
	})
	ecs.AddComponent(em, entityID, &components.NavigationComponent{
		Speed:            cfg.MoveSpeed,
		StoppingDistance: cfg.StoppingDistance,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Kind:        components.ColliderEnemy,
		Shape:       components.ShapeBox,
		HalfExtents: utils.Vec3{X: cfg.ColliderRadius, Y: EnemyBodyHalfHeight, Z: cfg.ColliderRadius},
		Offset:      utils.Vec3{Y: EnemyBodyHalfHeight},
	})

	anim := components.NewAnimationComponent()
	anim.Bools[components.AnimIsWalking] = true
	ecs.AddComponent(em, entityID, anim)

	return entityID, nil
}

// CloneEnemy 从模板克隆一个启用的敌人到指定位置
//
// 参数:
//   - em: 实体管理器
//   - template: 模板实体ID
//   - pos: 刷怪位置
//
// 返回:
//   - ecs.EntityID: 新敌人ID
//   - error: 模板不存在或组件缺失时返回错误
func CloneEnemy(em *ecs.EntityManager, template ecs.EntityID, pos utils.Vec3) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if !ecs.HasComponent[*components.TemplateComponent](em, template) {
		return 0, fmt.Errorf("entity %d is not an enemy template", template)
	}

	health, ok1 := ecs.GetComponent[*components.HealthComponent](em, template)
	enemy, ok2 := ecs.GetComponent[*components.EnemyComponent](em, template)
	nav, ok3 := ecs.GetComponent[*components.NavigationComponent](em, template)
	col, ok4 := ecs.GetComponent[*components.CollisionComponent](em, template)
	tr, ok5 := ecs.GetComponent[*components.TransformComponent](em, template)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return 0, fmt.Errorf("enemy template %d is missing components", template)
	}

	entityID := em.CreateEntity()

	// 组件按值复制，克隆体与模板互不影响
	newHealth := *health
	newHealth.CurrentHealth = health.MaxHealth
	newHealth.Dead = false
	ecs.AddComponent(em, entityID, &newHealth)

	newEnemy := components.EnemyComponent{
		State:         components.EnemyPursuing,
		AttackDelay:   enemy.AttackDelay,
		AttackRange:   enemy.AttackRange,
		AttackDamage:  enemy.AttackDamage,
		TriggerRadius: enemy.TriggerRadius,
	}
	ecs.AddComponent(em, entityID, &newEnemy)

	newNav := *nav
	newNav.Enabled = true
	newNav.Stopped = false
	newNav.HasDestination = false
	ecs.AddComponent(em, entityID, &newNav)

	newCol := *col
	newCol.Enabled = true
	ecs.AddComponent(em, entityID, &newCol)

	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Position: pos,
		Forward:  tr.Forward,
	})

	anim := components.NewAnimationComponent()
	if src, ok := ecs.GetComponent[*components.AnimationComponent](em, template); ok {
		for k, v := range src.Bools {
			anim.Bools[k] = v
		}
		for k, v := range src.Ints {
			anim.Ints[k] = v
		}
	}
	ecs.AddComponent(em, entityID, anim)

	return entityID, nil
}

// EnemyFactory 按模板在指定位置生成敌人
type EnemyFactory struct {
	em       *ecs.EntityManager
	template ecs.EntityID
}

// NewEnemyFactory 创建敌人工厂（同时创建模板）
func NewEnemyFactory(em *ecs.EntityManager, cfg config.EnemyConfig) (*EnemyFactory, error) {
	template, err := NewEnemyTemplate(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create enemy template: %w", err)
	}
	return &EnemyFactory{em: em, template: template}, nil
}

// Template 返回模板实体ID
func (f *EnemyFactory) Template() ecs.EntityID {
	return f.template
}

// SpawnEnemy 在 pos 处克隆一个新敌人
func (f *EnemyFactory) SpawnEnemy(pos utils.Vec3) (ecs.EntityID, error) {
	return CloneEnemy(f.em, f.template, pos)
}
