package components

import "github.com/decker502/deadshelf/pkg/scheduler"

// EnemyState 敌人状态
type EnemyState int

const (
	EnemyPursuing  EnemyState = iota // 追击（初始状态）
	EnemyAttacking                   // 攻击前摇中
	EnemyDead                        // 死亡（终态）
)

// String 状态名
func (s EnemyState) String() string {
	switch s {
	case EnemyPursuing:
		return "Pursuing"
	case EnemyAttacking:
		return "Attacking"
	case EnemyDead:
		return "Dead"
	}
	return "Unknown"
}

// EnemyComponent 敌人行为数据
type EnemyComponent struct {
	State         EnemyState
	AttackDelay   float64 // 攻击前摇（秒）
	AttackRange   float64 // 有效命中距离
	AttackDamage  float64 // 对玩家伤害
	TriggerRadius float64 // 攻击触发范围半径
	PlayerInRange bool    // 玩家是否在触发范围内（由 ProximitySystem 维护）

	PendingAttack scheduler.Handle // 等待结算的攻击
}

// TemplateComponent 标记模板实体
// 模板只用于克隆新敌人，本身永远禁用且不计入击杀
type TemplateComponent struct{}
