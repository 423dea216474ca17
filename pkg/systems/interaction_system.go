package systems

import (
	"log"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/types"
	"github.com/decker502/deadshelf/pkg/utils"
)

// InteractionPrompt 准星对准可交互物体时的提示
const InteractionPrompt = "Press E"

// interactMask 交互射线只检测可交互物体
var interactMask = components.MaskOf(
	components.ColliderBookshelf,
	components.ColliderDropOffBox,
	components.ColliderShop,
)

// PointsAwarder 奖励点数
type PointsAwarder interface {
	AddCurrency(amount int)
}

// ShopOpener 打开商店
type ShopOpener interface {
	Open()
}

// InteractionSystem 整理书籍副目标与场景交互
// 从取书箱拿书（随机分配目标书架），放到正确书架得分，对准商店柜台打开商店
type InteractionSystem struct {
	em        *ecs.EntityManager
	physics   *PhysicsSystem
	player    ecs.EntityID
	shelves   []ecs.EntityID
	dropOff   ecs.EntityID
	rng       Rand
	points    PointsAwarder
	shop      ShopOpener
	audio     types.AudioPlayer
	cfg       config.ObjectiveConfig
	distance  float64
	eyeHeight float64
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(
	em *ecs.EntityManager,
	physics *PhysicsSystem,
	player ecs.EntityID,
	shelves []ecs.EntityID,
	dropOff ecs.EntityID,
	rng Rand,
	points PointsAwarder,
	shop ShopOpener,
	audio types.AudioPlayer,
	cfg config.ObjectiveConfig,
	playerCfg config.PlayerConfig,
) *InteractionSystem {
	if audio == nil {
		audio = types.NopAudio{}
	}
	return &InteractionSystem{
		em:        em,
		physics:   physics,
		player:    player,
		shelves:   shelves,
		dropOff:   dropOff,
		rng:       rng,
		points:    points,
		shop:      shop,
		audio:     audio,
		cfg:       cfg,
		distance:  playerCfg.InteractionDistance,
		eyeHeight: playerCfg.EyeHeight,
	}
}

// Objective 返回玩家的副目标状态
func (s *InteractionSystem) Objective() *components.ObjectiveComponent {
	obj, _ := ecs.GetComponent[*components.ObjectiveComponent](s.em, s.player)
	return obj
}

// lookAt 交互射线检测
func (s *InteractionSystem) lookAt() (RayHit, bool) {
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.em, s.player)
	if !ok {
		return RayHit{}, false
	}
	origin := tr.Position.Add(utils.Vec3{Y: s.eyeHeight})
	return s.physics.Raycast(origin, tr.Forward, s.distance, interactMask)
}

// Update 刷新准星目标和提示文本
func (s *InteractionSystem) Update(deltaTime float64) {
	obj := s.Objective()
	if obj == nil {
		return
	}
	if hit, ok := s.lookAt(); ok {
		obj.LookTarget = hit.Entity
		obj.Prompt = InteractionPrompt
	} else {
		obj.LookTarget = ecs.InvalidEntity
		obj.Prompt = ""
	}
}

// Interact 与准星指向的物体交互，没有目标时返回 false
func (s *InteractionSystem) Interact() bool {
	hit, ok := s.lookAt()
	if !ok {
		return false
	}

	switch hit.Kind {
	case components.ColliderDropOffBox:
		return s.TryPickUpBook()
	case components.ColliderBookshelf:
		return s.ShelveBook(hit.Entity)
	case components.ColliderShop:
		s.shop.Open()
		return true
	case components.ColliderEnemy, components.ColliderObstacle:
		return false
	}
	return false
}

// TryPickUpBook 拿一本书并随机分配目标书架，超过携带上限返回 false
func (s *InteractionSystem) TryPickUpBook() bool {
	obj := s.Objective()
	if obj == nil {
		return false
	}
	if obj.BooksCarried() >= s.cfg.MaxBooks {
		log.Printf("[InteractionSystem] 最多只能携带 %d 本书", s.cfg.MaxBooks)
		return false
	}
	if len(s.shelves) == 0 {
		return false
	}

	shelf := s.shelves[s.rng.Intn(len(s.shelves))]
	obj.BookQueue = append(obj.BookQueue, shelf)
	log.Printf("[InteractionSystem] 拿起一本书，当前 %d 本，目标书架 %d", obj.BooksCarried(), shelf)
	return true
}

// ShelveBook 把队首的书放到书架上，书架不对或手中没书返回 false
func (s *InteractionSystem) ShelveBook(shelf ecs.EntityID) bool {
	obj := s.Objective()
	if obj == nil {
		return false
	}
	next, ok := obj.NextShelf()
	if !ok {
		log.Printf("[InteractionSystem] 手中没有书")
		return false
	}
	if next != shelf {
		return false
	}

	obj.BookQueue = obj.BookQueue[1:]
	obj.BooksShelved++
	s.points.AddCurrency(s.cfg.PointsPerBook)
	s.audio.PlayCue(types.CueBookShelved)
	log.Printf("[InteractionSystem] 书放对了! 剩余 %d 本，累计 %d 本", obj.BooksCarried(), obj.BooksShelved)
	return true
}

// ObjectiveTarget HUD 箭头指向的目标：队首书架，没有书时指向取书箱
func (s *InteractionSystem) ObjectiveTarget() ecs.EntityID {
	obj := s.Objective()
	if obj != nil {
		if shelf, ok := obj.NextShelf(); ok {
			return shelf
		}
	}
	return s.dropOff
}

// BooksShelved 已放对的书本数
func (s *InteractionSystem) BooksShelved() int {
	obj := s.Objective()
	if obj == nil {
		return 0
	}
	return obj.BooksShelved
}
