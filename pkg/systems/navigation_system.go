package systems

import (
	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/utils"
)

// NavigationSystem 水平面上的直线寻路
// 不做路径规划，代理直接朝目标移动并在停止距离处停下
type NavigationSystem struct {
	em *ecs.EntityManager
}

// NewNavigationSystem 创建寻路系统
func NewNavigationSystem(em *ecs.EntityManager) *NavigationSystem {
	return &NavigationSystem{em: em}
}

// SetDestination 设置寻路目标，已禁用的代理忽略
func (s *NavigationSystem) SetDestination(id ecs.EntityID, pos utils.Vec3) {
	nav, ok := ecs.GetComponent[*components.NavigationComponent](s.em, id)
	if !ok || !nav.Enabled {
		return
	}
	nav.Destination = pos
	nav.HasDestination = true
}

// Stop 暂停或恢复移动
func (s *NavigationSystem) Stop(id ecs.EntityID, stopped bool) {
	nav, ok := ecs.GetComponent[*components.NavigationComponent](s.em, id)
	if !ok || !nav.Enabled {
		return
	}
	nav.Stopped = stopped
}

// Disable 永久禁用代理（死亡后调用）
func (s *NavigationSystem) Disable(id ecs.EntityID) {
	nav, ok := ecs.GetComponent[*components.NavigationComponent](s.em, id)
	if !ok {
		return
	}
	nav.Stopped = true
	nav.Enabled = false
	nav.HasDestination = false
}

// Update 移动所有活动中的代理
func (s *NavigationSystem) Update(deltaTime float64) {
	entityList := ecs.GetEntitiesWith2[*components.NavigationComponent, *components.TransformComponent](s.em)

	for _, id := range entityList {
		nav, _ := ecs.GetComponent[*components.NavigationComponent](s.em, id)
		if !nav.Enabled || nav.Stopped || !nav.HasDestination {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)

		// 只在水平面移动，保持原有高度
		pos := tr.Position.Flat()
		dest := nav.Destination.Flat()
		toDest := dest.Sub(pos)
		dist := toDest.Length()
		if dist <= nav.StoppingDistance {
			continue
		}

		step := nav.Speed * deltaTime
		if remaining := dist - nav.StoppingDistance; step > remaining {
			step = remaining
		}
		next := utils.MoveTowards(pos, dest, step)

		tr.Position.X = next.X
		tr.Position.Z = next.Z
		tr.Forward = toDest.Normalize()
	}
}
