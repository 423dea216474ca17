// Package types 定义跨系统共享的基础类型与契约
package types

// DamageTarget 可受伤实体的契约（敌人、玩家）
//
// TakeDamage 扣除生命值；生命值首次降到 <=0 时同步触发一次死亡/失败处理，
// 并返回 true。之后的伤害仍会被记录（生命值可以为负），但不会再次触发。
type DamageTarget interface {
	TakeDamage(amount float64) bool
	IsDead() bool
}
