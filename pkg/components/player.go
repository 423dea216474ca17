package components

// PlayerComponent 标记玩家实体
type PlayerComponent struct {
	Yaw float64 // 水平朝向（弧度，0 = +Z）
}
