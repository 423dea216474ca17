package entities

import (
	"fmt"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/utils"
)

// LevelEntities 关卡中静态物体的实体ID
type LevelEntities struct {
	Bookshelves []ecs.EntityID
	DropOffBox  ecs.EntityID
	Shop        ecs.EntityID
	Obstacles   []ecs.EntityID
}

// NewPlayerEntity 创建玩家实体（位置、朝向、武器、副目标）
func NewPlayerEntity(em *ecs.EntityManager, layout *config.LevelLayout, weapon config.WeaponConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if layout == nil {
		return 0, fmt.Errorf("level layout cannot be nil")
	}

	entityID := em.CreateEntity()

	yaw := utils.DegToRad(layout.PlayerYaw)
	ecs.AddComponent(em, entityID, &components.PlayerComponent{Yaw: yaw})
	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Position: layout.PlayerStart,
		Forward:  utils.YawToForward(yaw),
	})
	ecs.AddComponent(em, entityID, &components.WeaponComponent{
		Name:           weapon.Name,
		MagazineSize:   weapon.MagazineSize,
		MaxReserveAmmo: weapon.MaxReserveAmmo,
		CurrentAmmo:    weapon.MagazineSize,
		ReserveAmmo:    weapon.MaxReserveAmmo,
		FireInterval:   weapon.FireInterval,
		ReloadTime:     weapon.ReloadTime,
		Damage:         weapon.Damage,
		Range:          weapon.Range,
		State:          components.WeaponIdle,
	})
	ecs.AddComponent(em, entityID, &components.ObjectiveComponent{})

	return entityID, nil
}

// newBoxEntity 创建一个静态盒子碰撞体
func newBoxEntity(em *ecs.EntityManager, kind components.ColliderKind, box config.BoxPlacement) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Position: box.Position,
		Forward:  utils.Forward,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Kind:        kind,
		Shape:       components.ShapeBox,
		HalfExtents: box.HalfExtents,
		Enabled:     true,
	})
	return entityID
}

// NewLevelEntities 根据关卡布局创建书架、取书箱、商店柜台和障碍物
func NewLevelEntities(em *ecs.EntityManager, layout *config.LevelLayout) (*LevelEntities, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if layout == nil {
		return nil, fmt.Errorf("level layout cannot be nil")
	}

	level := &LevelEntities{}

	for i, shelf := range layout.Bookshelves {
		id := newBoxEntity(em, components.ColliderBookshelf, shelf)
		ecs.AddComponent(em, id, &components.BookshelfComponent{Index: i + 1})
		level.Bookshelves = append(level.Bookshelves, id)
	}

	level.DropOffBox = newBoxEntity(em, components.ColliderDropOffBox, layout.DropOffBox)
	level.Shop = newBoxEntity(em, components.ColliderShop, layout.Shop)

	for _, obstacle := range layout.Obstacles {
		level.Obstacles = append(level.Obstacles, newBoxEntity(em, components.ColliderObstacle, obstacle))
	}

	return level, nil
}
