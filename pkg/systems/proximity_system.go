package systems

import (
	"log"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/ecs"
)

// ProximityListener 接收玩家进出敌人触发范围的事件
type ProximityListener interface {
	OnPlayerEnter(enemy ecs.EntityID)
	OnPlayerExit(enemy ecs.EntityID)
}

// ProximitySystem 维护每个敌人的触发范围（水平圆柱）
// 进入/离开时通知监听者，由监听者更新 EnemyComponent.PlayerInRange
type ProximitySystem struct {
	em       *ecs.EntityManager
	player   ecs.EntityID
	listener ProximityListener
}

// NewProximitySystem 创建触发范围系统
func NewProximitySystem(em *ecs.EntityManager, player ecs.EntityID, listener ProximityListener) *ProximitySystem {
	return &ProximitySystem{
		em:       em,
		player:   player,
		listener: listener,
	}
}

// Update 检测触发范围的进出变化
func (s *ProximitySystem) Update(deltaTime float64) {
	playerTr, ok := ecs.GetComponent[*components.TransformComponent](s.em, s.player)
	if !ok {
		return
	}
	playerPos := playerTr.Position.Flat()

	entityList := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.TransformComponent](s.em)
	for _, id := range entityList {
		if ecs.HasComponent[*components.TemplateComponent](s.em, id) || s.em.IsPendingDestroy(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if enemy.State == components.EnemyDead {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)

		inside := tr.Position.Flat().Distance(playerPos) <= enemy.TriggerRadius
		switch {
		case inside && !enemy.PlayerInRange:
			log.Printf("[ProximitySystem] 玩家进入敌人 %d 的攻击范围", id)
			s.listener.OnPlayerEnter(id)
		case !inside && enemy.PlayerInRange:
			log.Printf("[ProximitySystem] 玩家离开敌人 %d 的攻击范围", id)
			s.listener.OnPlayerExit(id)
		}
	}
}
