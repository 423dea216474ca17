package session

import (
	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/types"
	"github.com/decker502/deadshelf/pkg/utils"
)

// botPerkOrder 机器人购买特权的顺序
var botPerkOrder = []types.PerkType{
	types.PerkJuggernaut,
	types.PerkDoubleTap,
	types.PerkSpeedCola,
	types.PerkStaminUp,
}

// Bot 无头模拟用的简单玩家
// 有敌人时转身射击最近的敌人，没有敌人时去做整理书籍的副目标，
// 弹药耗尽或点数足够时去商店
type Bot struct {
	s *Session

	// ShelveBooks 为 false 时只战斗
	ShelveBooks bool
}

// NewBot 创建机器人
func NewBot(s *Session) *Bot {
	return &Bot{s: s, ShelveBooks: true}
}

// Step 执行一帧的操作（在 Session.Update 之前调用）
func (b *Bot) Step(deltaTime float64) {
	s := b.s
	if s.Over() {
		return
	}

	b.shop()

	if target, ok := b.nearestEnemy(); ok {
		s.FaceTowards(target)
		w := s.Weapon()
		if w != nil && w.CurrentAmmo == 0 && w.State != components.WeaponReloading {
			s.Reload()
		}
		s.Fire()
		return
	}

	if b.ShelveBooks {
		b.objective(deltaTime)
	}
}

// nearestEnemy 最近的存活敌人
func (b *Bot) nearestEnemy() (utils.Vec3, bool) {
	playerPos := b.s.PlayerPosition()
	best := utils.Zero
	bestDist := -1.0
	for _, e := range b.s.Enemies() {
		if e.State == components.EnemyDead {
			continue
		}
		d := e.Position.Flat().Distance(playerPos.Flat())
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.Position, d
		}
	}
	return best, bestDist >= 0
}

// objective 走向副目标并交互
func (b *Bot) objective(deltaTime float64) {
	s := b.s
	target := s.ObjectivePosition()
	s.FaceTowards(target)

	if s.Prompt() != "" {
		if _, kind, ok := s.LookTarget(); ok && kind != components.ColliderShop && s.Interact() {
			return
		}
	}
	s.Move(1, 0, deltaTime)
}

// shop 买得起就买：弹药耗尽先补弹，其次按顺序买特权，最后升级武器
func (b *Bot) shop() {
	s := b.s
	gc := s.cfg.Game.Shop
	w := s.Weapon()
	if w == nil {
		return
	}

	needAmmo := w.CurrentAmmo == 0 && w.ReserveAmmo == 0 && s.Points() >= gc.RefillCost
	var perk types.PerkType
	wantPerk := false
	for _, p := range botPerkOrder {
		if !s.shop.HasPerk(p) && s.Points() >= s.shop.PerkCost(p) {
			perk, wantPerk = p, true
			break
		}
	}
	if !needAmmo && !wantPerk && s.Points() < gc.UpgradeCost {
		return
	}

	s.OpenShop()
	defer s.CloseShop()

	if needAmmo {
		s.RefillAmmo()
	}
	if wantPerk {
		s.BuyPerk(perk)
	}
	if s.Points() >= gc.UpgradeCost {
		s.UpgradeWeapon()
	}
}
