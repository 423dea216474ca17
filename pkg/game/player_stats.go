package game

import (
	"log"

	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/scheduler"
)

// PlayerStats 玩家属性：生命值、回血和各种倍率
//
// 受伤后 RegenDelay 秒内没有再次受伤则回满血（每次受伤重新计时）
// 生命值首次降到 <=0 时通知失败监听者一次，之后不再回血
type PlayerStats struct {
	sched *scheduler.Scheduler
	owner ecs.EntityID // 回血计时器归属的玩家实体

	maxHealth     float64
	currentHealth float64
	regenDelay    float64
	regenTask     scheduler.Handle
	defeated      bool
	onDefeat      func()

	movementSpeed      float64
	reloadMultiplier   float64
	fireRateMultiplier float64
	damageMultiplier   float64
}

// NewPlayerStats 创建玩家属性
func NewPlayerStats(sched *scheduler.Scheduler, owner ecs.EntityID, cfg config.PlayerConfig) *PlayerStats {
	return &PlayerStats{
		sched:              sched,
		owner:              owner,
		maxHealth:          cfg.MaxHealth,
		currentHealth:      cfg.MaxHealth,
		regenDelay:         cfg.RegenDelay,
		movementSpeed:      cfg.MovementSpeed,
		reloadMultiplier:   1,
		fireRateMultiplier: 1,
		damageMultiplier:   1,
	}
}

// SetDefeatListener 设置玩家失败回调
func (p *PlayerStats) SetDefeatListener(fn func()) {
	p.onDefeat = fn
}

// TakeDamage 扣除生命值，首次降到 <=0 时返回 true
func (p *PlayerStats) TakeDamage(amount float64) bool {
	p.currentHealth -= amount

	if p.defeated {
		return false
	}

	if p.currentHealth <= 0 {
		p.defeated = true
		p.regenTask.Cancel()
		p.regenTask = scheduler.Handle{}
		log.Printf("[PlayerStats] 玩家阵亡")
		if p.onDefeat != nil {
			p.onDefeat()
		}
		return true
	}

	// 重新开始回血计时
	p.regenTask.Cancel()
	p.regenTask = p.sched.AfterFor(p.owner, p.regenDelay, func() {
		p.currentHealth = p.maxHealth
		p.regenTask = scheduler.Handle{}
	})
	return false
}

// IsDead 玩家是否已失败
func (p *PlayerStats) IsDead() bool {
	return p.defeated
}

// Health 当前生命值
func (p *PlayerStats) Health() float64 {
	return p.currentHealth
}

// MaxHealth 生命上限
func (p *PlayerStats) MaxHealth() float64 {
	return p.maxHealth
}

// RegenPending 是否有等待中的回血
func (p *PlayerStats) RegenPending() bool {
	return p.regenTask.Active()
}

func (p *PlayerStats) MovementSpeed() float64      { return p.movementSpeed }
func (p *PlayerStats) ReloadMultiplier() float64   { return p.reloadMultiplier }
func (p *PlayerStats) FireRateMultiplier() float64 { return p.fireRateMultiplier }
func (p *PlayerStats) DamageMultiplier() float64   { return p.damageMultiplier }

// SetMaxHealth 设置生命上限，当前生命值不变（下次回血时补满）
func (p *PlayerStats) SetMaxHealth(v float64) {
	p.maxHealth = v
}

// ScaleMovementSpeed 移动速度乘以 f
func (p *PlayerStats) ScaleMovementSpeed(f float64) {
	p.movementSpeed *= f
}

// ScaleReloadMultiplier 换弹倍率乘以 f（实际换弹时间 = 基础时间 / 倍率）
func (p *PlayerStats) ScaleReloadMultiplier(f float64) {
	p.reloadMultiplier *= f
}

// ScaleFireRateMultiplier 射速倍率乘以 f
func (p *PlayerStats) ScaleFireRateMultiplier(f float64) {
	p.fireRateMultiplier *= f
}

// ScaleDamageMultiplier 伤害倍率乘以 f
func (p *PlayerStats) ScaleDamageMultiplier(f float64) {
	p.damageMultiplier *= f
}
