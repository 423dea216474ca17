package components

// HitEffectComponent 命中特效（纯表现，配合 LifetimeComponent 自动清理）
type HitEffectComponent struct {
	Normal   [3]float64 // 命中面法线
	Critical bool       // 是否命中敌人（敌人血花 / 墙面火花）
}
