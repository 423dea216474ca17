package components

import "github.com/decker502/deadshelf/pkg/scheduler"

// WeaponState 武器状态（开火是瞬时动作，不是状态）
type WeaponState int

const (
	WeaponIdle WeaponState = iota
	WeaponReloading
)

// String 状态名
func (s WeaponState) String() string {
	if s == WeaponReloading {
		return "Reloading"
	}
	return "Idle"
}

// WeaponComponent 玩家武器数据
// 不变量：CurrentAmmo <= MagazineSize，ReserveAmmo <= MaxReserveAmmo
type WeaponComponent struct {
	Name           string
	MagazineSize   int
	MaxReserveAmmo int
	CurrentAmmo    int
	ReserveAmmo    int

	FireInterval float64 // 基础射击间隔（秒）
	ReloadTime   float64 // 基础换弹时间（秒）
	Damage       float64 // 基础伤害
	Range        float64 // 射程

	State        WeaponState
	LastFireTime float64
	HasFired     bool // 尚未开过火时不受射速限制

	ReloadRemaining float64          // 换弹剩余时间（秒，供 HUD 显示）
	ReloadTask      scheduler.Handle // 换弹倒计时
	UpgradeLevel    int
}
