package systems

import (
	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/entities"
	"github.com/decker502/deadshelf/pkg/types"
	"github.com/decker502/deadshelf/pkg/utils"
)

// stubStats 固定倍率的玩家属性
type stubStats struct {
	fireRate, reload, damage float64
}

func newStubStats() *stubStats {
	return &stubStats{fireRate: 1, reload: 1, damage: 1}
}

func (s *stubStats) FireRateMultiplier() float64 { return s.fireRate }
func (s *stubStats) ReloadMultiplier() float64   { return s.reload }
func (s *stubStats) DamageMultiplier() float64   { return s.damage }

// stubWallet 简单钱包
type stubWallet struct {
	points int
}

func (w *stubWallet) SpendCurrency(amount int) bool {
	if w.points < amount {
		return false
	}
	w.points -= amount
	return true
}

func (w *stubWallet) AddCurrency(amount int) {
	w.points += amount
}

// stubTarget 记录受到的伤害
type stubTarget struct {
	hits  []float64
	total float64
}

func (t *stubTarget) TakeDamage(amount float64) bool {
	t.hits = append(t.hits, amount)
	t.total += amount
	return false
}

func (t *stubTarget) IsDead() bool { return false }

// stubTargets 按实体ID解析伤害目标
type stubTargets map[ecs.EntityID]*stubTarget

func (m stubTargets) DamageTargetFor(id ecs.EntityID) (types.DamageTarget, bool) {
	t, ok := m[id]
	if !ok {
		return nil, false
	}
	return t, true
}

// recordingAudio 记录播放过的音效
type recordingAudio struct {
	cues []string
}

func (a *recordingAudio) PlayCue(id string) {
	a.cues = append(a.cues, id)
}

func (a *recordingAudio) count(id string) int {
	n := 0
	for _, c := range a.cues {
		if c == id {
			n++
		}
	}
	return n
}

// seqRand 按顺序返回预设值（取模），用完后重复最后一个
type seqRand struct {
	values []int
	i      int
}

func (r *seqRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i]
	if r.i < len(r.values)-1 {
		r.i++
	}
	return v % n
}

// newTestPlayer 在原点创建面向 +Z 的玩家
func newTestPlayer(em *ecs.EntityManager) ecs.EntityID {
	layout := &config.LevelLayout{PlayerStart: utils.Vec3{}, PlayerYaw: 0}
	id, err := entities.NewPlayerEntity(em, layout, config.DefaultGameConfig().Weapon)
	if err != nil {
		panic(err)
	}
	return id
}

// newTestBox 创建一个启用的盒子碰撞体
func newTestBox(em *ecs.EntityManager, kind components.ColliderKind, center, half utils.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: center, Forward: utils.Forward})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Kind:        kind,
		Shape:       components.ShapeBox,
		HalfExtents: half,
		Enabled:     true,
	})
	return id
}

// newTestSphere 创建一个启用的球形碰撞体
func newTestSphere(em *ecs.EntityManager, kind components.ColliderKind, center utils.Vec3, radius float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: center, Forward: utils.Forward})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Kind:    kind,
		Shape:   components.ShapeSphere,
		Radius:  radius,
		Enabled: true,
	})
	return id
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
