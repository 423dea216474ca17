package entities

import (
	"fmt"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/utils"
)

// NewHitEffect 创建命中特效实体
// 特效在命中点显示短暂时间后由 LifetimeSystem 自动清理
//
// 参数:
//   - em: 实体管理器
//   - point: 命中点（世界坐标）
//   - normal: 命中面法线
//   - critical: 是否命中敌人（血花），否则为墙面火花
//   - lifetime: 存在时间（秒）
//
// 返回:
//   - ecs.EntityID: 创建的特效实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewHitEffect(em *ecs.EntityManager, point, normal utils.Vec3, critical bool, lifetime float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if lifetime <= 0 {
		return 0, fmt.Errorf("hit effect lifetime must be positive, got %v", lifetime)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Position: point,
		Forward:  normal,
	})
	ecs.AddComponent(em, entityID, &components.HitEffectComponent{
		Normal:   [3]float64{normal.X, normal.Y, normal.Z},
		Critical: critical,
	})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		Duration: lifetime,
	})

	return entityID, nil
}
