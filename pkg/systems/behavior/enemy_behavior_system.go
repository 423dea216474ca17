package behavior

import (
	"log"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/scheduler"
	"github.com/decker502/deadshelf/pkg/systems"
	"github.com/decker502/deadshelf/pkg/types"
	"github.com/decker502/deadshelf/pkg/utils"
)

// 日志输出间隔常量
const LogOutputFrameInterval = 100 // 日志输出间隔（每N帧输出一次）

// Navigator 寻路协作者
type Navigator interface {
	SetDestination(id ecs.EntityID, pos utils.Vec3)
	Stop(id ecs.EntityID, stopped bool)
	Disable(id ecs.EntityID)
}

// Animator 表现层协作者，只接收动画意图
type Animator interface {
	SetBool(id ecs.EntityID, name string, value bool)
	SetInt(id ecs.EntityID, name string, value int)
	DeathAnimationDuration(id ecs.EntityID) float64
}

// KillListener 敌人死亡通知（回合系统统计击杀）
type KillListener interface {
	OnEnemyKilled(id ecs.EntityID)
}

// EnemyBehaviorSystem 敌人状态机
//
// 状态：Pursuing（追击）→ Attacking（攻击前摇）→ Pursuing；任意状态 → Dead（终态）
// 所有等待都是归属于敌人实体的调度任务，实体销毁时一并取消
type EnemyBehaviorSystem struct {
	entityManager *ecs.EntityManager
	sched         *scheduler.Scheduler
	nav           Navigator
	anim          Animator
	kills         KillListener
	player        ecs.EntityID
	playerTarget  types.DamageTarget
	rng           systems.Rand

	attackVariants  int
	deathBuffer     float64
	logFrameCounter int

	// resolved 本帧（Advance 期间）刚结束攻击的敌人，下一帧才允许再次发起攻击
	resolved map[ecs.EntityID]bool
}

// NewEnemyBehaviorSystem 创建敌人行为系统
//
// 参数:
//   - player: 玩家实体（追击目标位置）
//   - playerTarget: 玩家的受伤契约（PlayerStats）
//   - kills: 敌人死亡时通知的对象，可以为 nil
//   - rng: 攻击动画变体的随机源
func NewEnemyBehaviorSystem(
	em *ecs.EntityManager,
	sched *scheduler.Scheduler,
	nav Navigator,
	anim Animator,
	kills KillListener,
	player ecs.EntityID,
	playerTarget types.DamageTarget,
	rng systems.Rand,
	cfg config.EnemyConfig,
) *EnemyBehaviorSystem {
	variants := cfg.AttackVariants
	if variants < 1 {
		variants = 1
	}
	return &EnemyBehaviorSystem{
		entityManager:  em,
		sched:          sched,
		nav:            nav,
		anim:           anim,
		kills:          kills,
		player:         player,
		playerTarget:   playerTarget,
		rng:            rng,
		attackVariants: variants,
		deathBuffer:    cfg.DeathBuffer,
		resolved:       make(map[ecs.EntityID]bool),
	}
}

// queryEnemies 查询所有活动中的敌人（排除模板和待删除实体）
func (s *EnemyBehaviorSystem) queryEnemies() []ecs.EntityID {
	all := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.TransformComponent](s.entityManager)
	result := all[:0]
	for _, id := range all {
		if s.isTemplate(id) || s.entityManager.IsPendingDestroy(id) {
			continue
		}
		result = append(result, id)
	}
	return result
}

// Update 每帧推进一次每个敌人的状态检查
func (s *EnemyBehaviorSystem) Update(deltaTime float64) {
	enemyList := s.queryEnemies()

	if len(enemyList) > 0 {
		s.logFrameCounter++
		if s.logFrameCounter%LogOutputFrameInterval == 1 {
			log.Printf("[EnemyBehaviorSystem] 更新 %d 个敌人", len(enemyList))
		}
	}

	playerTr, hasPlayer := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.player)

	for _, id := range enemyList {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)

		switch enemy.State {
		case components.EnemyPursuing:
			if hasPlayer {
				s.nav.Stop(id, false)
				s.nav.SetDestination(id, playerTr.Position)
			}
			if enemy.PlayerInRange && !s.resolved[id] {
				s.TryStartAttack(id)
			}
		case components.EnemyAttacking:
			s.nav.Stop(id, true)
		case components.EnemyDead:
			// 等待销毁
		}
	}
	clear(s.resolved)
}

// OnPlayerEnter 玩家进入触发范围
func (s *EnemyBehaviorSystem) OnPlayerEnter(id ecs.EntityID) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok || enemy.State == components.EnemyDead {
		return
	}
	enemy.PlayerInRange = true
}

// OnPlayerExit 玩家离开触发范围
func (s *EnemyBehaviorSystem) OnPlayerExit(id ecs.EntityID) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok {
		return
	}
	enemy.PlayerInRange = false
}

// TryStartAttack 开始一次攻击
// 只有追击状态可以发起攻击，攻击前摇中重复调用返回 false
func (s *EnemyBehaviorSystem) TryStartAttack(id ecs.EntityID) bool {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok || enemy.State != components.EnemyPursuing {
		return false
	}

	enemy.State = components.EnemyAttacking
	s.nav.Stop(id, true)

	variant := s.rng.Intn(s.attackVariants)
	s.anim.SetBool(id, components.AnimIsWalking, false)
	s.anim.SetBool(id, components.AnimIsAttacking, true)
	s.anim.SetInt(id, components.AnimAttackingAnimation, variant)

	enemy.PendingAttack = s.sched.AfterFor(id, enemy.AttackDelay, func() {
		s.resolveAttack(id)
	})
	return true
}

// resolveAttack 前摇结束后结算攻击
// 玩家必须仍在触发范围内且在攻击距离内才会受到伤害
func (s *EnemyBehaviorSystem) resolveAttack(id ecs.EntityID) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok || enemy.State != components.EnemyAttacking {
		return
	}
	enemy.PendingAttack = scheduler.Handle{}
	s.resolved[id] = true

	if enemy.PlayerInRange && s.playerWithinAttackRange(id, enemy) {
		log.Printf("[EnemyBehaviorSystem] 敌人 %d 击中玩家，伤害 %.0f", id, enemy.AttackDamage)
		s.playerTarget.TakeDamage(enemy.AttackDamage)
	}

	enemy.State = components.EnemyPursuing
	s.anim.SetBool(id, components.AnimIsWalking, true)
	s.anim.SetBool(id, components.AnimIsAttacking, false)
}

func (s *EnemyBehaviorSystem) playerWithinAttackRange(id ecs.EntityID, enemy *components.EnemyComponent) bool {
	tr, ok1 := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	playerTr, ok2 := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.player)
	if !ok1 || !ok2 {
		return false
	}
	return tr.Position.Distance(playerTr.Position) <= enemy.AttackRange
}

// TakeDamage 对敌人造成伤害
// 生命值首次降到 <=0 时先通知击杀再进入死亡流程，返回 true；之后的伤害只扣血
// 模板不参与战斗，伤害被忽略
func (s *EnemyBehaviorSystem) TakeDamage(id ecs.EntityID, amount float64) bool {
	if s.isTemplate(id) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok {
		return false
	}

	health.CurrentHealth -= amount
	log.Printf("[EnemyBehaviorSystem] 敌人 %d 受到 %.0f 伤害，当前生命 %.0f", id, amount, health.CurrentHealth)

	if health.Dead || health.CurrentHealth > 0 {
		return false
	}

	health.Dead = true
	if s.kills != nil {
		s.kills.OnEnemyKilled(id)
	}
	s.die(id)
	return true
}

// die 进入死亡终态：停止寻路、关闭碰撞、取消未完成的任务，动画结束后销毁
func (s *EnemyBehaviorSystem) die(id ecs.EntityID) {
	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok {
		enemy.State = components.EnemyDead
		enemy.PlayerInRange = false
		enemy.PendingAttack = scheduler.Handle{}
	}

	s.anim.SetBool(id, components.AnimIsDead, true)
	s.nav.Stop(id, true)
	s.nav.Disable(id)
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		col.Enabled = false
	}

	s.sched.CancelOwner(id)

	// 短暂缓冲让死亡动画开始，再等动画播放完毕
	s.sched.AfterFor(id, s.deathBuffer, func() {
		duration := s.anim.DeathAnimationDuration(id)
		s.sched.AfterFor(id, duration, func() {
			s.Destroy(id)
		})
	})
}

// Destroy 销毁敌人并取消其名下全部任务
func (s *EnemyBehaviorSystem) Destroy(id ecs.EntityID) {
	s.sched.CancelOwner(id)
	s.entityManager.DestroyEntity(id)
}

// IsDead 敌人是否已死亡
func (s *EnemyBehaviorSystem) IsDead(id ecs.EntityID) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	return ok && health.Dead
}

func (s *EnemyBehaviorSystem) isTemplate(id ecs.EntityID) bool {
	return ecs.HasComponent[*components.TemplateComponent](s.entityManager, id)
}

// DamageTargetFor 把敌人实体包装为 DamageTarget，模板没有对应的目标
func (s *EnemyBehaviorSystem) DamageTargetFor(id ecs.EntityID) (types.DamageTarget, bool) {
	if s.isTemplate(id) {
		return nil, false
	}
	if !ecs.HasComponent[*components.EnemyComponent](s.entityManager, id) ||
		!ecs.HasComponent[*components.HealthComponent](s.entityManager, id) {
		return nil, false
	}
	return enemyTarget{s: s, id: id}, true
}

// enemyTarget 敌人的 DamageTarget 适配
type enemyTarget struct {
	s  *EnemyBehaviorSystem
	id ecs.EntityID
}

func (t enemyTarget) TakeDamage(amount float64) bool {
	return t.s.TakeDamage(t.id, amount)
}

func (t enemyTarget) IsDead() bool {
	return t.s.IsDead(t.id)
}
