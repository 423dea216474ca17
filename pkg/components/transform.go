package components

import "github.com/decker502/deadshelf/pkg/utils"

// TransformComponent 实体的世界位置与水平朝向
// 敌人由 NavigationSystem 移动，玩家由 Session 根据输入移动
type TransformComponent struct {
	Position utils.Vec3 // 世界坐标（脚底）
	Forward  utils.Vec3 // 朝向（单位向量，Y=0）
}
