package components

// HealthComponent 存储敌人的生命值
// 死亡后仍允许继续扣减（可以为负数），Dead 只会被置位一次
type HealthComponent struct {
	CurrentHealth float64 // 当前生命值
	MaxHealth     float64 // 初始生命值
	Dead          bool    // 是否已触发死亡
}
