// Package session 组装一局游戏：实体、系统、调度器和玩家状态
//
// Session 不依赖 ebiten，桌面场景和无头模拟共用同一套逻辑。
package session

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/entities"
	"github.com/decker502/deadshelf/pkg/game"
	"github.com/decker502/deadshelf/pkg/scheduler"
	"github.com/decker502/deadshelf/pkg/systems"
	"github.com/decker502/deadshelf/pkg/systems/behavior"
	"github.com/decker502/deadshelf/pkg/types"
	"github.com/decker502/deadshelf/pkg/utils"
)

// PlayerRadius 玩家与静态物体的碰撞半径
const PlayerRadius = 0.3

// Config 创建会话所需的数据和协作者
type Config struct {
	Game  *config.GameConfig
	Level *config.LevelLayout

	// Audio 为 nil 时静音
	Audio types.AudioPlayer
	// Reporter 为 nil 时写日志
	Reporter game.SummaryReporter
	// Seed 为 0 时使用当前时间
	Seed int64
}

// Session 一局游戏
type Session struct {
	cfg      Config
	id       string
	rng      *rand.Rand
	reporter game.SummaryReporter

	em     *ecs.EntityManager
	sched  *scheduler.Scheduler
	player ecs.EntityID
	level  *entities.LevelEntities

	stats  *game.PlayerStats
	points *game.PlayerPoints

	factory     *entities.EnemyFactory
	physics     *systems.PhysicsSystem
	nav         *systems.NavigationSystem
	anim        *systems.AnimationSystem
	proximity   *systems.ProximitySystem
	behavior    *behavior.EnemyBehaviorSystem
	lifetime    *systems.LifetimeSystem
	weapon      *systems.WeaponSystem
	round       *systems.RoundSystem
	interaction *systems.InteractionSystem
	shop        *systems.ShopSystem

	defeated bool
	finished bool
	paused   bool
	summary  game.RoundSummary
	frame    int
}

// New 创建一局新游戏并开始回合
func New(cfg Config) (*Session, error) {
	if cfg.Game == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if cfg.Level == nil {
		return nil, fmt.Errorf("level layout cannot be nil")
	}
	if cfg.Audio == nil {
		cfg.Audio = types.NopAudio{}
	}

	s := &Session{cfg: cfg, reporter: cfg.Reporter}
	if s.reporter == nil {
		s.reporter = game.LogSummaryReporter{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))

	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// build 创建实体和系统
// 系统之间通过构造参数注入协作者
func (s *Session) build() error {
	gc := s.cfg.Game
	layout := s.cfg.Level

	s.id = uuid.NewString()
	s.em = ecs.NewEntityManager()
	s.sched = scheduler.New()
	s.defeated = false
	s.finished = false
	s.paused = false
	s.summary = game.RoundSummary{}
	s.frame = 0

	var err error
	s.player, err = entities.NewPlayerEntity(s.em, layout, gc.Weapon)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	s.level, err = entities.NewLevelEntities(s.em, layout)
	if err != nil {
		return fmt.Errorf("failed to create level entities: %w", err)
	}
	s.factory, err = entities.NewEnemyFactory(s.em, gc.Enemy)
	if err != nil {
		return fmt.Errorf("failed to create enemy factory: %w", err)
	}

	s.stats = game.NewPlayerStats(s.sched, s.player, gc.Player)
	s.stats.SetDefeatListener(s.onDefeat)
	s.points = game.NewPlayerPoints(gc.Player.StartingPoints)

	s.physics = systems.NewPhysicsSystem(s.em)
	s.nav = systems.NewNavigationSystem(s.em)
	s.anim = systems.NewAnimationSystem(s.em, gc.Animation.DeathDuration)
	s.lifetime = systems.NewLifetimeSystem(s.em)

	s.round = systems.NewRoundSystem(s.em, s.sched, s.factory, s.player, s.factory.Template(),
		layout.SpawnPoints, s.rng, gc.Round.SpawnInterval, gc.Round.SpawnImmediately)
	s.behavior = behavior.NewEnemyBehaviorSystem(s.em, s.sched, s.nav, s.anim, s.round,
		s.player, s.stats, s.rng, gc.Enemy)
	s.proximity = systems.NewProximitySystem(s.em, s.player, s.behavior)

	s.weapon = systems.NewWeaponSystem(s.em, s.sched, s.physics, s.player,
		s.stats, s.points, s.behavior, s.cfg.Audio, gc.Weapon, gc.Player.EyeHeight)
	s.shop = systems.NewShopSystem(s.points, s.stats, s.weapon, s.cfg.Audio, gc.Shop)
	s.interaction = systems.NewInteractionSystem(s.em, s.physics, s.player,
		s.level.Bookshelves, s.level.DropOffBox, s.rng, s.points, s.shop, s.cfg.Audio,
		gc.Objective, gc.Player)

	s.round.Start()
	log.Printf("[Session] 会话 %s 开始，关卡 %s", s.id, layout.ID)
	return nil
}

// Update 推进一帧
// 顺序：调度器 → 触发范围 → 敌人行为 → 寻路 → 交互 → 生命周期 → 清理
// 商店打开、暂停菜单打开或玩家阵亡后模拟暂停
func (s *Session) Update(deltaTime float64) {
	if !s.active() {
		return
	}

	s.sched.Advance(deltaTime)
	s.proximity.Update(deltaTime)
	s.behavior.Update(deltaTime)
	s.nav.Update(deltaTime)
	s.interaction.Update(deltaTime)
	s.lifetime.Update(deltaTime)

	if removed := s.em.RemoveMarkedEntities(); removed > 0 {
		log.Printf("[Session] 清理了 %d 个实体", removed)
	}

	s.frame++
	if s.frame%behavior.LogOutputFrameInterval == 0 {
		log.Printf("[Session] t=%.1fs 生命 %.0f 点数 %d 击杀 %d",
			s.sched.Now(), s.stats.Health(), s.points.Points(), s.round.Kills())
	}
}

// active 是否接受玩家操作
func (s *Session) active() bool {
	return !s.defeated && !s.finished && !s.paused && !s.shop.IsOpen()
}

// SetPaused 暂停或恢复模拟（暂停菜单使用）
func (s *Session) SetPaused(paused bool) {
	s.paused = paused
}

// Paused 是否处于暂停
func (s *Session) Paused() bool {
	return s.paused
}

// Move 在水平面移动玩家
// forward/strafe 取值 [-1, 1]，速度来自 PlayerStats（受 Stamin-Up 影响）
func (s *Session) Move(forward, strafe, deltaTime float64) {
	if !s.active() {
		return
	}
	tr := s.playerTransform()
	if tr == nil {
		return
	}

	fwd := tr.Forward.Flat().Normalize()
	right := utils.Vec3{X: fwd.Z, Z: -fwd.X}
	dir := fwd.Scale(forward).Add(right.Scale(strafe))
	if l := dir.Length(); l > 1 {
		dir = dir.Scale(1 / l)
	}
	step := dir.Scale(s.stats.MovementSpeed() * deltaTime)

	// 分轴移动，贴着障碍物滑动
	pos := tr.Position
	if next := (utils.Vec3{X: pos.X + step.X, Y: pos.Y, Z: pos.Z}); !s.blocked(next) {
		pos = next
	}
	if next := (utils.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z + step.Z}); !s.blocked(next) {
		pos = next
	}
	tr.Position = s.cfg.Level.Bounds.Clamp(pos)
}

// blocked 玩家站在 p 时是否与静态盒子重叠
func (s *Session) blocked(p utils.Vec3) bool {
	for _, id := range s.staticProps() {
		tr, ok1 := ecs.GetComponent[*components.TransformComponent](s.em, id)
		col, ok2 := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if !ok1 || !ok2 || !col.Enabled {
			continue
		}
		c := tr.Position.Add(col.Offset)
		h := col.HalfExtents
		if math.Abs(p.X-c.X) < h.X+PlayerRadius && math.Abs(p.Z-c.Z) < h.Z+PlayerRadius {
			return true
		}
	}
	return false
}

func (s *Session) staticProps() []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(s.level.Bookshelves)+len(s.level.Obstacles)+2)
	ids = append(ids, s.level.Bookshelves...)
	ids = append(ids, s.level.Obstacles...)
	ids = append(ids, s.level.DropOffBox, s.level.Shop)
	return ids
}

// Turn 转动视角（弧度，正值向右）
func (s *Session) Turn(delta float64) {
	if !s.active() {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.player)
	tr := s.playerTransform()
	if !ok || tr == nil {
		return
	}
	player.Yaw = math.Remainder(player.Yaw+delta, 2*math.Pi)
	tr.Forward = utils.YawToForward(player.Yaw)
}

// FaceTowards 让玩家朝向水平面上的某点（无头机器人使用）
func (s *Session) FaceTowards(target utils.Vec3) {
	if !s.active() {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.player)
	tr := s.playerTransform()
	if !ok || tr == nil {
		return
	}
	dir := target.Sub(tr.Position).Flat()
	if dir.Length() < 1e-9 {
		return
	}
	player.Yaw = utils.ForwardToYaw(dir)
	tr.Forward = dir.Normalize()
}

// Fire 开火
func (s *Session) Fire() bool {
	if !s.active() {
		return false
	}
	return s.weapon.TryFire(s.sched.Now())
}

// Reload 手动换弹
func (s *Session) Reload() bool {
	if !s.active() {
		return false
	}
	return s.weapon.Reload()
}

// Interact 与准星指向的物体交互
func (s *Session) Interact() bool {
	if !s.active() {
		return false
	}
	return s.interaction.Interact()
}

// OpenShop 打开商店（模拟暂停）
func (s *Session) OpenShop() {
	if s.defeated || s.finished {
		return
	}
	s.shop.Open()
}

// CloseShop 关闭商店
func (s *Session) CloseShop() {
	s.shop.Close()
}

// ShopOpen 商店是否打开
func (s *Session) ShopOpen() bool {
	return s.shop.IsOpen()
}

// BuyPerk 购买特权（只能在商店打开时）
func (s *Session) BuyPerk(p types.PerkType) bool {
	if !s.shop.IsOpen() {
		return false
	}
	return s.shop.BuyPerk(p)
}

// UpgradeWeapon 升级武器（只能在商店打开时）
func (s *Session) UpgradeWeapon() bool {
	if !s.shop.IsOpen() {
		return false
	}
	return s.shop.UpgradeWeapon()
}

// RefillAmmo 补充弹药（只能在商店打开时）
func (s *Session) RefillAmmo() bool {
	if !s.shop.IsOpen() {
		return false
	}
	return s.shop.RefillAmmo()
}

// onDefeat 玩家阵亡：停止刷怪和换弹，上报结算，冻结模拟
func (s *Session) onDefeat() {
	if s.defeated {
		return
	}
	s.defeated = true
	log.Printf("[Session] 玩家阵亡，会话 %s 结束", s.id)
	s.end()
}

// Finish 主动结束本局（无头模拟到达时长上限时调用）
func (s *Session) Finish() game.RoundSummary {
	if !s.defeated && !s.finished {
		s.finished = true
		s.end()
	}
	return s.summary
}

func (s *Session) end() {
	duration := s.round.ElapsedTime()
	s.round.Stop()
	s.weapon.Shutdown()
	s.shop.Close()

	s.summary = game.RoundSummary{
		SessionID:    s.id,
		Kills:        s.round.Kills(),
		BooksShelved: s.interaction.BooksShelved(),
		Points:       s.points.Points(),
		Duration:     duration,
	}
	s.reporter.ReportRound(s.summary)
}

// Restart 丢弃当前状态，用同一配置开始新的一局
func (s *Session) Restart() error {
	s.Close()
	return s.build()
}

// Close 取消所有计时器
func (s *Session) Close() {
	s.weapon.Shutdown()
	s.round.Stop()
	s.sched.Clear()
}
