package components

import "github.com/decker502/deadshelf/pkg/utils"

// ColliderKind 碰撞体类别（封闭枚举，使用处需穷举 switch）
type ColliderKind int

const (
	// ColliderEnemy 可受伤的敌人
	ColliderEnemy ColliderKind = iota
	// ColliderObstacle 惰性障碍物，吸收子弹
	ColliderObstacle
	// ColliderBookshelf 书架（交互目标）
	ColliderBookshelf
	// ColliderDropOffBox 取书箱（交互目标）
	ColliderDropOffBox
	// ColliderShop 商店柜台（交互目标）
	ColliderShop
)

// String 返回类别名，用于日志
func (k ColliderKind) String() string {
	switch k {
	case ColliderEnemy:
		return "Enemy"
	case ColliderObstacle:
		return "Obstacle"
	case ColliderBookshelf:
		return "Bookshelf"
	case ColliderDropOffBox:
		return "DropOffBox"
	case ColliderShop:
		return "Shop"
	}
	return "Unknown"
}

// ColliderMask 碰撞类别位掩码，射线查询用来过滤目标
type ColliderMask uint32

// MaskOf 组合多个类别
func MaskOf(kinds ...ColliderKind) ColliderMask {
	var m ColliderMask
	for _, k := range kinds {
		m |= 1 << uint(k)
	}
	return m
}

// Has 掩码是否包含类别
func (m ColliderMask) Has(k ColliderKind) bool {
	return m&(1<<uint(k)) != 0
}

// MaskAll 所有类别
const MaskAll ColliderMask = ^ColliderMask(0)

// ColliderShape 碰撞体形状
type ColliderShape int

const (
	ShapeSphere ColliderShape = iota
	ShapeBox
)

// CollisionComponent 射线检测用的碰撞体
// 中心 = TransformComponent.Position + Offset
type CollisionComponent struct {
	Kind        ColliderKind
	Shape       ColliderShape
	Radius      float64    // 球半径（ShapeSphere）
	HalfExtents utils.Vec3 // 半尺寸（ShapeBox，轴对齐）
	Offset      utils.Vec3 // 相对实体位置的偏移
	Enabled     bool       // 禁用后射线穿透
}
