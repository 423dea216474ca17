package systems

import (
	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/ecs"
)

// AnimationSystem 记录动画意图
// 只保存参数，由表现层读取；死亡动画时长来自配置
type AnimationSystem struct {
	em            *ecs.EntityManager
	deathDuration float64
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager, deathDuration float64) *AnimationSystem {
	return &AnimationSystem{
		em:            em,
		deathDuration: deathDuration,
	}
}

func (s *AnimationSystem) component(id ecs.EntityID) *components.AnimationComponent {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.em, id)
	if !ok {
		anim = components.NewAnimationComponent()
		ecs.AddComponent(s.em, id, anim)
	}
	return anim
}

// SetBool 设置布尔动画参数
func (s *AnimationSystem) SetBool(id ecs.EntityID, name string, value bool) {
	if !s.em.Exists(id) {
		return
	}
	s.component(id).Bools[name] = value
}

// SetInt 设置整数动画参数
func (s *AnimationSystem) SetInt(id ecs.EntityID, name string, value int) {
	if !s.em.Exists(id) {
		return
	}
	s.component(id).Ints[name] = value
}

// Bool 读取布尔参数（表现层和测试使用）
func (s *AnimationSystem) Bool(id ecs.EntityID, name string) bool {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.em, id)
	if !ok {
		return false
	}
	return anim.Bools[name]
}

// Int 读取整数参数
func (s *AnimationSystem) Int(id ecs.EntityID, name string) int {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.em, id)
	if !ok {
		return 0
	}
	return anim.Ints[name]
}

// DeathAnimationDuration 死亡动画时长（秒）
func (s *AnimationSystem) DeathAnimationDuration(id ecs.EntityID) float64 {
	return s.deathDuration
}
