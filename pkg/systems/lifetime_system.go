package systems

import (
	"log"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/ecs"
)

// LifetimeSystem 推进限时实体的年龄，到期的交给实体管理器延迟删除
type LifetimeSystem struct {
	em      *ecs.EntityManager
	expired int
}

func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{em: em}
}

// Update 返回本帧到期的实体数
func (s *LifetimeSystem) Update(deltaTime float64) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.em) {
		if s.em.IsPendingDestroy(id) {
			continue
		}
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		life.Age += deltaTime
		if !life.Expired() {
			continue
		}
		s.em.DestroyEntity(id)
		n++
	}
	if n > 0 {
		s.expired += n
		log.Printf("[LifetimeSystem] 回收 %d 个到期实体（累计 %d）", n, s.expired)
	}
	return n
}

// ExpiredTotal 累计回收数
func (s *LifetimeSystem) ExpiredTotal() int {
	return s.expired
}
