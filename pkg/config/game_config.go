package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WeaponConfig 武器基础属性（原版 RPK）
type WeaponConfig struct {
	Name               string  `yaml:"name"`               // 武器名
	MagazineSize       int     `yaml:"magazineSize"`       // 弹匣容量
	MaxReserveAmmo     int     `yaml:"maxReserveAmmo"`     // 备弹上限
	FireInterval       float64 `yaml:"fireInterval"`       // 基础射击间隔（秒）
	ReloadTime         float64 `yaml:"reloadTime"`         // 基础换弹时间（秒）
	ReloadTickInterval float64 `yaml:"reloadTickInterval"` // 换弹倒计时刷新间隔（秒）
	Damage             float64 `yaml:"damage"`             // 基础伤害
	Range              float64 `yaml:"range"`              // 射线检测距离
	HitEffectLifetime  float64 `yaml:"hitEffectLifetime"`  // 命中特效存在时间（秒）

	UpgradeDamageFactor       float64 `yaml:"upgradeDamageFactor"`       // 升级伤害倍率
	UpgradeFireIntervalFactor float64 `yaml:"upgradeFireIntervalFactor"` // 升级射击间隔倍率（<1 更快）
	UpgradeMagazineBonus      int     `yaml:"upgradeMagazineBonus"`      // 升级弹匣/当前弹药增量
	UpgradeReserveBonus       int     `yaml:"upgradeReserveBonus"`       // 升级备弹增量
}

// EnemyConfig 敌人（僵尸）属性
type EnemyConfig struct {
	BaseHealth       float64 `yaml:"baseHealth"`       // 初始生命值
	AttackDelay      float64 `yaml:"attackDelay"`      // 攻击前摇（秒）
	AttackDamage     float64 `yaml:"attackDamage"`     // 对玩家伤害
	AttackRange      float64 `yaml:"attackRange"`      // 有效命中距离
	TriggerRadius    float64 `yaml:"triggerRadius"`    // 攻击触发范围半径
	MoveSpeed        float64 `yaml:"moveSpeed"`        // 追击速度（米/秒）
	StoppingDistance float64 `yaml:"stoppingDistance"` // 寻路停止距离
	ColliderRadius   float64 `yaml:"colliderRadius"`   // 受击碰撞球半径
	DeathBuffer      float64 `yaml:"deathBuffer"`      // 死亡动画触发缓冲（秒）
	AttackVariants   int     `yaml:"attackVariants"`   // 攻击动画变体数量
}

// PlayerConfig 玩家属性
type PlayerConfig struct {
	MaxHealth           float64 `yaml:"maxHealth"`           // 生命上限
	MovementSpeed       float64 `yaml:"movementSpeed"`       // 基础移动速度
	TurnSpeed           float64 `yaml:"turnSpeed"`           // 键盘转向速度（弧度/秒）
	RegenDelay          float64 `yaml:"regenDelay"`          // 受伤后回满血的延迟（秒）
	InteractionDistance float64 `yaml:"interactionDistance"` // 交互射线距离
	EyeHeight           float64 `yaml:"eyeHeight"`           // 视点高度
	StartingPoints      int     `yaml:"startingPoints"`      // 初始点数
}

// RoundConfig 回合节奏
type RoundConfig struct {
	SpawnInterval    float64 `yaml:"spawnInterval"`    // 刷怪间隔（秒）
	SpawnImmediately bool    `yaml:"spawnImmediately"` // 回合开始时立即刷一只
}

// ShopConfig 商店价格与效果
type ShopConfig struct {
	JuggernautCost        int     `yaml:"juggernautCost"`
	JuggernautMaxHealth   float64 `yaml:"juggernautMaxHealth"`
	StaminUpCost          int     `yaml:"staminUpCost"`
	StaminUpSpeedFactor   float64 `yaml:"staminUpSpeedFactor"`
	SpeedColaCost         int     `yaml:"speedColaCost"`
	SpeedColaReloadFactor float64 `yaml:"speedColaReloadFactor"` // 换弹倍率乘数（2 = 换弹时间减半）
	DoubleTapCost         int     `yaml:"doubleTapCost"`
	DoubleTapFactor       float64 `yaml:"doubleTapFactor"`
	UpgradeCost           int     `yaml:"upgradeCost"`
	RefillCost            int     `yaml:"refillCost"`
}

// ObjectiveConfig 整理书籍副目标
type ObjectiveConfig struct {
	MaxBooks      int `yaml:"maxBooks"`      // 最多同时携带的书本数
	PointsPerBook int `yaml:"pointsPerBook"` // 每本书放对后获得的点数
}

// AnimationConfig 表现层时长（核心只读取死亡动画时长）
type AnimationConfig struct {
	DeathDuration float64 `yaml:"deathDuration"` // 死亡动画时长（秒）
}

// GameConfig 游戏整体配置（data/game.yaml）
type GameConfig struct {
	Weapon    WeaponConfig    `yaml:"weapon"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Player    PlayerConfig    `yaml:"player"`
	Round     RoundConfig     `yaml:"round"`
	Shop      ShopConfig      `yaml:"shop"`
	Objective ObjectiveConfig `yaml:"objective"`
	Animation AnimationConfig `yaml:"animation"`
}

// DefaultGameConfig 返回原版数值
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Weapon: WeaponConfig{
			Name:                      "RPK",
			MagazineSize:              40,
			MaxReserveAmmo:            200,
			FireInterval:              0.1,
			ReloadTime:                3.5,
			ReloadTickInterval:        0.1,
			Damage:                    30,
			Range:                     100,
			HitEffectLifetime:         0.5,
			UpgradeDamageFactor:       1.5,
			UpgradeFireIntervalFactor: 0.8,
			UpgradeMagazineBonus:      10,
			UpgradeReserveBonus:       50,
		},
		Enemy: EnemyConfig{
			BaseHealth:       100,
			AttackDelay:      0.9,
			AttackDamage:     50,
			AttackRange:      2,
			TriggerRadius:    1.5,
			MoveSpeed:        3.5,
			StoppingDistance: 1.0,
			ColliderRadius:   0.5,
			DeathBuffer:      0.1,
			AttackVariants:   3,
		},
		Player: PlayerConfig{
			MaxHealth:           100,
			MovementSpeed:       5,
			TurnSpeed:           2.5,
			RegenDelay:          3,
			InteractionDistance: 0.8,
			EyeHeight:           1.6,
			StartingPoints:      0,
		},
		Round: RoundConfig{
			SpawnInterval:    10,
			SpawnImmediately: true,
		},
		Shop: ShopConfig{
			JuggernautCost:        2500,
			JuggernautMaxHealth:   250,
			StaminUpCost:          2000,
			StaminUpSpeedFactor:   1.2,
			SpeedColaCost:         3000,
			SpeedColaReloadFactor: 2.0,
			DoubleTapCost:         3500,
			DoubleTapFactor:       1.3,
			UpgradeCost:           5000,
			RefillCost:            500,
		},
		Objective: ObjectiveConfig{
			MaxBooks:      5,
			PointsPerBook: 250,
		},
		Animation: AnimationConfig{
			DeathDuration: 2.0,
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏配置
// 文件中未出现的字段保留 DefaultGameConfig 的值
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 数据并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// validateGameConfig 校验数值合法性
func validateGameConfig(cfg *GameConfig) error {
	w := cfg.Weapon
	if w.MagazineSize <= 0 {
		return fmt.Errorf("weapon.magazineSize must be positive, got %d", w.MagazineSize)
	}
	if w.MaxReserveAmmo < 0 {
		return fmt.Errorf("weapon.maxReserveAmmo cannot be negative, got %d", w.MaxReserveAmmo)
	}
	if w.FireInterval <= 0 {
		return fmt.Errorf("weapon.fireInterval must be positive, got %v", w.FireInterval)
	}
	if w.ReloadTime <= 0 {
		return fmt.Errorf("weapon.reloadTime must be positive, got %v", w.ReloadTime)
	}
	if w.ReloadTickInterval <= 0 || w.ReloadTickInterval > w.ReloadTime {
		return fmt.Errorf("weapon.reloadTickInterval must be in (0, reloadTime], got %v", w.ReloadTickInterval)
	}
	if w.Damage < 0 {
		return fmt.Errorf("weapon.damage cannot be negative, got %v", w.Damage)
	}
	if w.Range <= 0 {
		return fmt.Errorf("weapon.range must be positive, got %v", w.Range)
	}

	e := cfg.Enemy
	if e.BaseHealth <= 0 {
		return fmt.Errorf("enemy.baseHealth must be positive, got %v", e.BaseHealth)
	}
	if e.AttackDelay < 0 {
		return fmt.Errorf("enemy.attackDelay cannot be negative, got %v", e.AttackDelay)
	}
	if e.AttackRange <= 0 || e.TriggerRadius <= 0 {
		return fmt.Errorf("enemy.attackRange and enemy.triggerRadius must be positive")
	}
	if e.MoveSpeed < 0 {
		return fmt.Errorf("enemy.moveSpeed cannot be negative, got %v", e.MoveSpeed)
	}
	if e.AttackVariants < 1 {
		return fmt.Errorf("enemy.attackVariants must be at least 1, got %d", e.AttackVariants)
	}

	p := cfg.Player
	if p.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be positive, got %v", p.MaxHealth)
	}
	if p.InteractionDistance <= 0 {
		return fmt.Errorf("player.interactionDistance must be positive, got %v", p.InteractionDistance)
	}

	if cfg.Round.SpawnInterval <= 0 {
		return fmt.Errorf("round.spawnInterval must be positive, got %v", cfg.Round.SpawnInterval)
	}

	s := cfg.Shop
	for name, cost := range map[string]int{
		"juggernautCost": s.JuggernautCost,
		"staminUpCost":   s.StaminUpCost,
		"speedColaCost":  s.SpeedColaCost,
		"doubleTapCost":  s.DoubleTapCost,
		"upgradeCost":    s.UpgradeCost,
		"refillCost":     s.RefillCost,
	} {
		if cost < 0 {
			return fmt.Errorf("shop.%s cannot be negative, got %d", name, cost)
		}
	}

	if cfg.Objective.MaxBooks < 1 {
		return fmt.Errorf("objective.maxBooks must be at least 1, got %d", cfg.Objective.MaxBooks)
	}
	if cfg.Animation.DeathDuration < 0 {
		return fmt.Errorf("animation.deathDuration cannot be negative, got %v", cfg.Animation.DeathDuration)
	}

	return nil
}
