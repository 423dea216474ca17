package types

// PerkType 商店可购买的增益
type PerkType int

const (
	// PerkJuggernaut 生命上限提升
	PerkJuggernaut PerkType = iota
	// PerkStaminUp 移动速度提升
	PerkStaminUp
	// PerkSpeedCola 换弹加速
	PerkSpeedCola
	// PerkDoubleTap 射速与伤害提升
	PerkDoubleTap
)

// String 返回增益的显示名
func (p PerkType) String() string {
	switch p {
	case PerkJuggernaut:
		return "Juggernaut"
	case PerkStaminUp:
		return "Stamin-Up"
	case PerkSpeedCola:
		return "Speed Cola"
	case PerkDoubleTap:
		return "Double Tap"
	}
	return "Unknown"
}

// AllPerks 所有增益（商店列表顺序）
var AllPerks = []PerkType{PerkJuggernaut, PerkStaminUp, PerkSpeedCola, PerkDoubleTap}
