package session

import (
	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/game"
	"github.com/decker502/deadshelf/pkg/types"
	"github.com/decker502/deadshelf/pkg/utils"
)

// EnemyView 绘制用的敌人快照
type EnemyView struct {
	ID        ecs.EntityID
	Position  utils.Vec3
	Forward   utils.Vec3
	State     components.EnemyState
	Health    float64
	Attacking bool
}

// PropView 绘制用的静态物体快照
type PropView struct {
	ID          ecs.EntityID
	Kind        components.ColliderKind
	Center      utils.Vec3
	HalfExtents utils.Vec3
	Highlighted bool // 当前目标书架
}

// HitView 命中特效快照
type HitView struct {
	Position utils.Vec3
	Critical bool
	Fade     float64 // 0 刚出现，1 即将消失
}

// ID 会话ID
func (s *Session) ID() string {
	return s.id
}

// Now 会话时钟
func (s *Session) Now() float64 {
	return s.sched.Now()
}

// Defeated 玩家是否阵亡
func (s *Session) Defeated() bool {
	return s.defeated
}

// Over 本局是否已结束（阵亡或主动结束）
func (s *Session) Over() bool {
	return s.defeated || s.finished
}

// Summary 结算数据（结束后有效）
func (s *Session) Summary() game.RoundSummary {
	return s.summary
}

// LevelID 当前关卡ID
func (s *Session) LevelID() string {
	return s.cfg.Level.ID
}

// Stats 玩家属性
func (s *Session) Stats() *game.PlayerStats {
	return s.stats
}

// Points 当前点数
func (s *Session) Points() int {
	return s.points.Points()
}

// Weapon 武器状态
func (s *Session) Weapon() *components.WeaponComponent {
	return s.weapon.Weapon()
}

// Kills 击杀数
func (s *Session) Kills() int {
	return s.round.Kills()
}

// BooksShelved 已放对的书
func (s *Session) BooksShelved() int {
	return s.interaction.BooksShelved()
}

// BooksCarried 手中的书
func (s *Session) BooksCarried() int {
	obj := s.interaction.Objective()
	if obj == nil {
		return 0
	}
	return obj.BooksCarried()
}

// Prompt 交互提示（空表示隐藏）
func (s *Session) Prompt() string {
	obj := s.interaction.Objective()
	if obj == nil {
		return ""
	}
	return obj.Prompt
}

// LookTarget 准星指向的可交互物体
func (s *Session) LookTarget() (ecs.EntityID, components.ColliderKind, bool) {
	obj := s.interaction.Objective()
	if obj == nil || obj.LookTarget == ecs.InvalidEntity {
		return ecs.InvalidEntity, 0, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, obj.LookTarget)
	if !ok {
		return ecs.InvalidEntity, 0, false
	}
	return obj.LookTarget, col.Kind, true
}

// ObjectivePosition 副目标箭头指向的位置
func (s *Session) ObjectivePosition() utils.Vec3 {
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.em, s.interaction.ObjectiveTarget())
	if !ok {
		return utils.Zero
	}
	return tr.Position
}

// TimeUntilNextSpawn 距离下一次刷怪
func (s *Session) TimeUntilNextSpawn() float64 {
	return s.round.TimeUntilNextSpawn()
}

// ElapsedTime 本局已进行时间
func (s *Session) ElapsedTime() float64 {
	if s.Over() {
		return s.summary.Duration
	}
	return s.round.ElapsedTime()
}

func (s *Session) playerTransform() *components.TransformComponent {
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.em, s.player)
	if !ok {
		return nil
	}
	return tr
}

// PlayerPosition 玩家位置
func (s *Session) PlayerPosition() utils.Vec3 {
	if tr := s.playerTransform(); tr != nil {
		return tr.Position
	}
	return utils.Zero
}

// PlayerForward 玩家朝向
func (s *Session) PlayerForward() utils.Vec3 {
	if tr := s.playerTransform(); tr != nil {
		return tr.Forward
	}
	return utils.Forward
}

// Enemies 所有克隆出的敌人（不含模板）
func (s *Session) Enemies() []EnemyView {
	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.TransformComponent, *components.HealthComponent](s.em)
	views := make([]EnemyView, 0, len(ids))
	for _, id := range ids {
		if ecs.HasComponent[*components.TemplateComponent](s.em, id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.em, id)
		views = append(views, EnemyView{
			ID:        id,
			Position:  tr.Position,
			Forward:   tr.Forward,
			State:     enemy.State,
			Health:    health.CurrentHealth,
			Attacking: s.anim.Bool(id, components.AnimIsAttacking),
		})
	}
	return views
}

// Props 关卡中的静态物体
func (s *Session) Props() []PropView {
	highlight, hasBook := ecs.InvalidEntity, false
	if obj := s.interaction.Objective(); obj != nil {
		highlight, hasBook = obj.NextShelf()
	}

	ids := s.staticProps()
	views := make([]PropView, 0, len(ids))
	for _, id := range ids {
		tr, ok1 := ecs.GetComponent[*components.TransformComponent](s.em, id)
		col, ok2 := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if !ok1 || !ok2 {
			continue
		}
		views = append(views, PropView{
			ID:          id,
			Kind:        col.Kind,
			Center:      tr.Position.Add(col.Offset),
			HalfExtents: col.HalfExtents,
			Highlighted: hasBook && id == highlight,
		})
	}
	return views
}

// HitEffects 仍在显示的命中特效
func (s *Session) HitEffects() []HitView {
	ids := ecs.GetEntitiesWith3[*components.HitEffectComponent, *components.TransformComponent, *components.LifetimeComponent](s.em)
	views := make([]HitView, 0, len(ids))
	for _, id := range ids {
		hit, _ := ecs.GetComponent[*components.HitEffectComponent](s.em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		views = append(views, HitView{Position: tr.Position, Critical: hit.Critical, Fade: life.Progress()})
	}
	return views
}

// Bounds 可行走区域
func (s *Session) Bounds() (utils.Vec3, utils.Vec3) {
	return s.cfg.Level.Bounds.Min, s.cfg.Level.Bounds.Max
}

// HasPerk 是否已购买该增益
func (s *Session) HasPerk(p types.PerkType) bool {
	return s.shop.HasPerk(p)
}

// PerkCost 增益价格
func (s *Session) PerkCost(p types.PerkType) int {
	return s.shop.PerkCost(p)
}

// UpgradeCost 武器升级价格
func (s *Session) UpgradeCost() int {
	return s.cfg.Game.Shop.UpgradeCost
}

// RefillCost 补充弹药价格
func (s *Session) RefillCost() int {
	return s.cfg.Game.Shop.RefillCost
}
