package systems

import (
	"log"

	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/types"
)

// PerkTarget 接收特权效果的玩家属性
type PerkTarget interface {
	SetMaxHealth(v float64)
	ScaleMovementSpeed(f float64)
	ScaleReloadMultiplier(f float64)
	ScaleFireRateMultiplier(f float64)
	ScaleDamageMultiplier(f float64)
}

// WeaponUpgrader 商店对武器的操作
type WeaponUpgrader interface {
	ApplyUpgrade()
	RefillReserve(cost int) bool
}

// ShopSystem 商店：特权、武器升级、补充弹药
// 商店打开期间模拟暂停（由 Session 检查 IsOpen）
type ShopSystem struct {
	wallet Wallet
	stats  PerkTarget
	weapon WeaponUpgrader
	audio  types.AudioPlayer
	cfg    config.ShopConfig

	open  bool
	owned map[types.PerkType]bool
}

// NewShopSystem 创建商店系统
func NewShopSystem(wallet Wallet, stats PerkTarget, weapon WeaponUpgrader, audio types.AudioPlayer, cfg config.ShopConfig) *ShopSystem {
	if audio == nil {
		audio = types.NopAudio{}
	}
	return &ShopSystem{
		wallet: wallet,
		stats:  stats,
		weapon: weapon,
		audio:  audio,
		cfg:    cfg,
		owned:  make(map[types.PerkType]bool),
	}
}

// Open 打开商店
func (s *ShopSystem) Open() {
	if s.open {
		return
	}
	s.open = true
	log.Printf("[ShopSystem] 打开商店")
}

// Close 关闭商店
func (s *ShopSystem) Close() {
	if !s.open {
		return
	}
	s.open = false
	log.Printf("[ShopSystem] 关闭商店")
}

// IsOpen 商店是否打开
func (s *ShopSystem) IsOpen() bool {
	return s.open
}

// PerkCost 特权价格
func (s *ShopSystem) PerkCost(p types.PerkType) int {
	switch p {
	case types.PerkJuggernaut:
		return s.cfg.JuggernautCost
	case types.PerkStaminUp:
		return s.cfg.StaminUpCost
	case types.PerkSpeedCola:
		return s.cfg.SpeedColaCost
	case types.PerkDoubleTap:
		return s.cfg.DoubleTapCost
	}
	return 0
}

// HasPerk 是否已购买
func (s *ShopSystem) HasPerk(p types.PerkType) bool {
	return s.owned[p]
}

// BuyPerk 购买特权，每种只能买一次；点数不足或已拥有返回 false
func (s *ShopSystem) BuyPerk(p types.PerkType) bool {
	if s.owned[p] {
		log.Printf("[ShopSystem] 已拥有 %s", p)
		return false
	}
	if !s.wallet.SpendCurrency(s.PerkCost(p)) {
		log.Printf("[ShopSystem] 点数不足，无法购买 %s", p)
		return false
	}

	switch p {
	case types.PerkJuggernaut:
		s.stats.SetMaxHealth(s.cfg.JuggernautMaxHealth)
	case types.PerkStaminUp:
		s.stats.ScaleMovementSpeed(s.cfg.StaminUpSpeedFactor)
	case types.PerkSpeedCola:
		s.stats.ScaleReloadMultiplier(s.cfg.SpeedColaReloadFactor)
	case types.PerkDoubleTap:
		s.stats.ScaleFireRateMultiplier(s.cfg.DoubleTapFactor)
		s.stats.ScaleDamageMultiplier(s.cfg.DoubleTapFactor)
	}

	s.owned[p] = true
	s.audio.PlayCue(types.CuePurchase)
	log.Printf("[ShopSystem] 购买了 %s", p)
	return true
}

// UpgradeWeapon 升级武器（可重复购买）
func (s *ShopSystem) UpgradeWeapon() bool {
	if !s.wallet.SpendCurrency(s.cfg.UpgradeCost) {
		log.Printf("[ShopSystem] 点数不足，无法升级武器")
		return false
	}
	s.weapon.ApplyUpgrade()
	s.audio.PlayCue(types.CuePurchase)
	return true
}

// RefillAmmo 补满备弹
func (s *ShopSystem) RefillAmmo() bool {
	return s.weapon.RefillReserve(s.cfg.RefillCost)
}
