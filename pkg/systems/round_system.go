package systems

import (
	"log"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/scheduler"
	"github.com/decker502/deadshelf/pkg/utils"
)

// EnemySpawner 在指定位置生成敌人
type EnemySpawner interface {
	SpawnEnemy(pos utils.Vec3) (ecs.EntityID, error)
}

// RoundSystem 回合导演：周期性刷怪并统计击杀
// 刷怪没有上限，直到 Stop 为止
type RoundSystem struct {
	em         *ecs.EntityManager
	sched      *scheduler.Scheduler
	spawner    EnemySpawner
	player     ecs.EntityID
	template   ecs.EntityID
	candidates []utils.Vec3
	rng        Rand

	spawnImmediately bool
	roundEntity      ecs.EntityID
	spawnTask        scheduler.Handle
}

// NewRoundSystem 创建回合系统并创建回合实体
//
// 参数:
//   - player: 玩家实体（用于视野排除）
//   - template: 敌人模板实体（击杀不计数）
//   - candidates: 关卡刷怪点（只读）
//   - interval: 刷怪间隔（秒）
//   - spawnImmediately: 回合开始时是否立即刷一只
func NewRoundSystem(
	em *ecs.EntityManager,
	sched *scheduler.Scheduler,
	spawner EnemySpawner,
	player, template ecs.EntityID,
	candidates []utils.Vec3,
	rng Rand,
	interval float64,
	spawnImmediately bool,
) *RoundSystem {
	roundEntity := em.CreateEntity()
	ecs.AddComponent(em, roundEntity, &components.RoundStateComponent{
		SpawnInterval: interval,
	})

	return &RoundSystem{
		em:               em,
		sched:            sched,
		spawner:          spawner,
		player:           player,
		template:         template,
		candidates:       candidates,
		rng:              rng,
		spawnImmediately: spawnImmediately,
		roundEntity:      roundEntity,
	}
}

// State 返回回合状态
func (s *RoundSystem) State() *components.RoundStateComponent {
	state, _ := ecs.GetComponent[*components.RoundStateComponent](s.em, s.roundEntity)
	return state
}

// Start 开始刷怪循环，重复调用无效果
func (s *RoundSystem) Start() {
	state := s.State()
	if state == nil || state.Running {
		return
	}

	state.Running = true
	state.StartedAt = s.sched.Now()
	log.Printf("[RoundSystem] 回合开始，刷怪间隔 %.1f 秒", state.SpawnInterval)

	if s.spawnImmediately {
		s.spawnCycle()
	}
	s.spawnTask = s.sched.Every(s.roundEntity, state.SpawnInterval, s.spawnCycle)
}

// Stop 停止刷怪
func (s *RoundSystem) Stop() {
	s.spawnTask.Cancel()
	s.spawnTask = scheduler.Handle{}
	if state := s.State(); state != nil && state.Running {
		state.Running = false
		log.Printf("[RoundSystem] 回合结束，击杀 %d", state.Kills)
	}
}

// Running 刷怪循环是否在运行
func (s *RoundSystem) Running() bool {
	state := s.State()
	return state != nil && state.Running
}

// TimeUntilNextSpawn 距离下一次刷怪的时间（秒）
func (s *RoundSystem) TimeUntilNextSpawn() float64 {
	return s.spawnTask.Remaining()
}

// ElapsedTime 回合已进行时间
func (s *RoundSystem) ElapsedTime() float64 {
	state := s.State()
	if state == nil {
		return 0
	}
	return s.sched.Now() - state.StartedAt
}

// spawnCycle 一次刷怪：选点失败则跳过本轮
func (s *RoundSystem) spawnCycle() {
	state := s.State()
	if state == nil {
		return
	}
	state.SpawnAttempts++

	playerTr, ok := ecs.GetComponent[*components.TransformComponent](s.em, s.player)
	if !ok {
		state.SpawnsSkipped++
		return
	}

	point, ok := SelectSpawnPoint(playerTr.Position, playerTr.Forward, s.candidates, s.rng)
	if !ok {
		state.SpawnsSkipped++
		log.Printf("[RoundSystem] 没有视野外的刷怪点，跳过本轮")
		return
	}

	id, err := s.spawner.SpawnEnemy(point)
	if err != nil {
		state.SpawnsSkipped++
		log.Printf("[RoundSystem] 刷怪失败: %v", err)
		return
	}
	state.EnemiesSpawned++
	log.Printf("[RoundSystem] 在 (%.1f, %.1f, %.1f) 生成敌人 %d", point.X, point.Y, point.Z, id)
}

// OnEnemyKilled 敌人死亡通知，模板实体不计数
func (s *RoundSystem) OnEnemyKilled(id ecs.EntityID) {
	if id == s.template || ecs.HasComponent[*components.TemplateComponent](s.em, id) {
		return
	}
	state := s.State()
	if state == nil {
		return
	}
	state.Kills++
	log.Printf("[RoundSystem] 击杀 +1，总计 %d", state.Kills)
}

// Kills 当前击杀数
func (s *RoundSystem) Kills() int {
	state := s.State()
	if state == nil {
		return 0
	}
	return state.Kills
}
