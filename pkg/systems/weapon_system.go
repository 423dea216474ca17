package systems

import (
	"log"
	"math"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/entities"
	"github.com/decker502/deadshelf/pkg/scheduler"
	"github.com/decker502/deadshelf/pkg/types"
	"github.com/decker502/deadshelf/pkg/utils"
)

// WeaponStats 武器读取的玩家属性倍率
type WeaponStats interface {
	FireRateMultiplier() float64
	ReloadMultiplier() float64
	DamageMultiplier() float64
}

// Wallet 点数钱包，扣款失败时不产生任何效果
type Wallet interface {
	SpendCurrency(amount int) bool
}

// DamageTargetResolver 将射线命中的实体解析为可受伤目标
type DamageTargetResolver interface {
	DamageTargetFor(id ecs.EntityID) (types.DamageTarget, bool)
}

// shootMask 子弹与所有碰撞体求交，最近的阻挡物吸收子弹
const shootMask = components.MaskAll

// WeaponSystem 玩家武器：射击、换弹、补给、升级
// 武器数据保存在玩家实体的 WeaponComponent 上，换弹倒计时归玩家实体所有
type WeaponSystem struct {
	em        *ecs.EntityManager
	sched     *scheduler.Scheduler
	physics   *PhysicsSystem
	owner     ecs.EntityID
	stats     WeaponStats
	wallet    Wallet
	targets   DamageTargetResolver
	audio     types.AudioPlayer
	cfg       config.WeaponConfig
	eyeHeight float64
}

// NewWeaponSystem 创建武器系统
//
// 参数:
//   - owner: 持有 WeaponComponent 和 TransformComponent 的玩家实体
//   - audio: 为 nil 时不播放音效
func NewWeaponSystem(
	em *ecs.EntityManager,
	sched *scheduler.Scheduler,
	physics *PhysicsSystem,
	owner ecs.EntityID,
	stats WeaponStats,
	wallet Wallet,
	targets DamageTargetResolver,
	audio types.AudioPlayer,
	cfg config.WeaponConfig,
	eyeHeight float64,
) *WeaponSystem {
	if audio == nil {
		audio = types.NopAudio{}
	}
	return &WeaponSystem{
		em:        em,
		sched:     sched,
		physics:   physics,
		owner:     owner,
		stats:     stats,
		wallet:    wallet,
		targets:   targets,
		audio:     audio,
		cfg:       cfg,
		eyeHeight: eyeHeight,
	}
}

// Weapon 返回武器组件（HUD 读取）
func (s *WeaponSystem) Weapon() *components.WeaponComponent {
	w, _ := ecs.GetComponent[*components.WeaponComponent](s.em, s.owner)
	return w
}

// EffectiveFireInterval 当前实际射击间隔
func (s *WeaponSystem) EffectiveFireInterval() float64 {
	w := s.Weapon()
	if w == nil {
		return 0
	}
	return w.FireInterval / s.stats.FireRateMultiplier()
}

// EffectiveReloadTime 当前实际换弹时间
func (s *WeaponSystem) EffectiveReloadTime() float64 {
	w := s.Weapon()
	if w == nil {
		return 0
	}
	return w.ReloadTime / s.stats.ReloadMultiplier()
}

// TryFire 尝试开火
// 换弹中、射速冷却中返回 false；弹匣为空时自动开始换弹并返回 false
func (s *WeaponSystem) TryFire(now float64) bool {
	w := s.Weapon()
	if w == nil || w.State == components.WeaponReloading {
		return false
	}

	if w.HasFired && now-w.LastFireTime < s.EffectiveFireInterval() {
		return false
	}

	if w.CurrentAmmo <= 0 {
		s.audio.PlayCue(types.CueDryFire)
		s.Reload()
		return false
	}

	w.CurrentAmmo--
	w.LastFireTime = now
	w.HasFired = true
	s.audio.PlayCue(types.CueGunshot)

	origin, dir := s.aim()
	if hit, ok := s.physics.Raycast(origin, dir, w.Range, shootMask); ok {
		s.resolveHit(w, hit)
	}

	log.Printf("[WeaponSystem] %s 开火! 弹药: %d / %d", w.Name, w.CurrentAmmo, w.ReserveAmmo)
	return true
}

// aim 射线起点（视点高度）和方向（玩家朝向）
func (s *WeaponSystem) aim() (utils.Vec3, utils.Vec3) {
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.em, s.owner)
	if !ok {
		return utils.Zero, utils.Zero
	}
	origin := tr.Position.Add(utils.Vec3{Y: s.eyeHeight})
	return origin, tr.Forward
}

// resolveHit 根据命中物体类别结算
func (s *WeaponSystem) resolveHit(w *components.WeaponComponent, hit RayHit) {
	switch hit.Kind {
	case components.ColliderEnemy:
		target, ok := s.targets.DamageTargetFor(hit.Entity)
		if !ok {
			return
		}
		damage := math.RoundToEven(w.Damage * s.stats.DamageMultiplier())
		target.TakeDamage(damage)
		if _, err := entities.NewHitEffect(s.em, hit.Point, hit.Normal, true, s.cfg.HitEffectLifetime); err != nil {
			log.Printf("[WeaponSystem] 创建命中特效失败: %v", err)
		}
	case components.ColliderObstacle, components.ColliderBookshelf, components.ColliderDropOffBox, components.ColliderShop:
		// 惰性物体吸收子弹
		log.Printf("[WeaponSystem] 子弹被 %s 挡住", hit.Kind)
	}
}

// Reload 开始换弹
// 备弹为空、弹匣已满或已在换弹中时返回 false
func (s *WeaponSystem) Reload() bool {
	w := s.Weapon()
	if w == nil || w.State == components.WeaponReloading {
		return false
	}
	if w.ReserveAmmo <= 0 || w.CurrentAmmo >= w.MagazineSize {
		return false
	}

	duration := s.EffectiveReloadTime()
	tick := s.cfg.ReloadTickInterval
	ticks := int(math.Ceil(duration/tick - 1e-9))
	if ticks < 1 {
		ticks = 1
	}

	w.State = components.WeaponReloading
	w.ReloadRemaining = duration
	s.audio.PlayCue(types.CueReload)
	log.Printf("[WeaponSystem] 开始换弹，耗时 %.2f 秒", duration)

	elapsed := 0
	var handle scheduler.Handle
	handle = s.sched.Every(s.owner, tick, func() {
		elapsed++
		w.ReloadRemaining = math.Max(0, duration-float64(elapsed)*tick)
		if elapsed >= ticks {
			handle.Cancel()
			s.completeReload(w)
		}
	})
	w.ReloadTask = handle
	return true
}

// completeReload 从备弹补满弹匣
func (s *WeaponSystem) completeReload(w *components.WeaponComponent) {
	n := w.MagazineSize - w.CurrentAmmo
	if n > w.ReserveAmmo {
		n = w.ReserveAmmo
	}
	if n < 0 {
		n = 0
	}
	w.CurrentAmmo += n
	w.ReserveAmmo -= n
	w.State = components.WeaponIdle
	w.ReloadRemaining = 0
	w.ReloadTask = scheduler.Handle{}
	log.Printf("[WeaponSystem] 换弹完成，弹药: %d / %d", w.CurrentAmmo, w.ReserveAmmo)
}

// RefillReserve 花费点数补满备弹，点数不足返回 false
func (s *WeaponSystem) RefillReserve(cost int) bool {
	w := s.Weapon()
	if w == nil {
		return false
	}
	if !s.wallet.SpendCurrency(cost) {
		log.Printf("[WeaponSystem] 点数不足，无法补充弹药 (需要 %d)", cost)
		return false
	}
	w.ReserveAmmo = w.MaxReserveAmmo
	s.audio.PlayCue(types.CuePurchase)
	return true
}

// ApplyUpgrade 升级武器，可重复叠加
// 弹匣容量和备弹上限随之提高，保证弹药不超过上限
func (s *WeaponSystem) ApplyUpgrade() {
	w := s.Weapon()
	if w == nil {
		return
	}
	w.Damage *= s.cfg.UpgradeDamageFactor
	w.FireInterval *= s.cfg.UpgradeFireIntervalFactor
	w.MagazineSize += s.cfg.UpgradeMagazineBonus
	w.CurrentAmmo += s.cfg.UpgradeMagazineBonus
	w.MaxReserveAmmo += s.cfg.UpgradeReserveBonus
	w.ReserveAmmo += s.cfg.UpgradeReserveBonus
	w.UpgradeLevel++

	log.Printf("[WeaponSystem] %s 升级到 %d 级: 伤害 = %.1f, 弹药 = %d / %d, 射击间隔 = %.3f",
		w.Name, w.UpgradeLevel, w.Damage, w.CurrentAmmo, w.ReserveAmmo, w.FireInterval)
}

// Shutdown 取消进行中的换弹
func (s *WeaponSystem) Shutdown() {
	w := s.Weapon()
	if w == nil {
		return
	}
	w.ReloadTask.Cancel()
	w.ReloadTask = scheduler.Handle{}
	w.State = components.WeaponIdle
	w.ReloadRemaining = 0
}
