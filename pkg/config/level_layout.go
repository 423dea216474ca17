package config

import (
	"fmt"
	"os"

	"github.com/decker502/deadshelf/pkg/utils"
	"gopkg.in/yaml.v3"
)

// BoxPlacement 场景中的轴对齐盒子物体（书架、障碍物、投递箱、商店柜台）
type BoxPlacement struct {
	Position    utils.Vec3 `yaml:"position"`    // 盒子中心
	HalfExtents utils.Vec3 `yaml:"halfExtents"` // 半尺寸
}

// Bounds 可行走区域
type Bounds struct {
	Min utils.Vec3 `yaml:"min"`
	Max utils.Vec3 `yaml:"max"`
}

// Contains 点是否在水平范围内
func (b Bounds) Contains(p utils.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Clamp 将点限制在水平范围内
func (b Bounds) Clamp(p utils.Vec3) utils.Vec3 {
	if p.X < b.Min.X {
		p.X = b.Min.X
	}
	if p.X > b.Max.X {
		p.X = b.Max.X
	}
	if p.Z < b.Min.Z {
		p.Z = b.Min.Z
	}
	if p.Z > b.Max.Z {
		p.Z = b.Max.Z
	}
	return p
}

// LevelLayout 关卡布局（data/levels/*.yaml）
// 刷怪点等都是只读的场景数据
type LevelLayout struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Bounds      Bounds         `yaml:"bounds"`
	PlayerStart utils.Vec3     `yaml:"playerStart"`
	PlayerYaw   float64        `yaml:"playerYaw"` // 初始朝向（角度，0 = +Z）
	SpawnPoints []utils.Vec3   `yaml:"spawnPoints"`
	Bookshelves []BoxPlacement `yaml:"bookshelves"`
	DropOffBox  BoxPlacement   `yaml:"dropOffBox"`
	Shop        BoxPlacement   `yaml:"shop"`
	Obstacles   []BoxPlacement `yaml:"obstacles"`
}

// LoadLevelLayout 从 YAML 文件加载关卡布局
func LoadLevelLayout(path string) (*LevelLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level layout file %s: %w", path, err)
	}

	layout, err := ParseLevelLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// ParseLevelLayout 解析并校验关卡布局
func ParseLevelLayout(data []byte) (*LevelLayout, error) {
	var layout LevelLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse level layout YAML: %w", err)
	}

	if err := validateLevelLayout(&layout); err != nil {
		return nil, fmt.Errorf("invalid level layout: %w", err)
	}
	return &layout, nil
}

func validateLevelLayout(layout *LevelLayout) error {
	if layout.ID == "" {
		return fmt.Errorf("id is required")
	}

	b := layout.Bounds
	if b.Min.X >= b.Max.X || b.Min.Z >= b.Max.Z {
		return fmt.Errorf("bounds min must be smaller than max, got %v..%v", b.Min, b.Max)
	}
	if !b.Contains(layout.PlayerStart) {
		return fmt.Errorf("playerStart %v is outside bounds", layout.PlayerStart)
	}

	if len(layout.SpawnPoints) == 0 {
		return fmt.Errorf("at least one spawn point is required")
	}
	if len(layout.Bookshelves) == 0 {
		return fmt.Errorf("at least one bookshelf is required")
	}

	check := func(name string, box BoxPlacement) error {
		h := box.HalfExtents
		if h.X <= 0 || h.Y <= 0 || h.Z <= 0 {
			return fmt.Errorf("%s: halfExtents must be positive, got %v", name, h)
		}
		return nil
	}
	for i, shelf := range layout.Bookshelves {
		if err := check(fmt.Sprintf("bookshelves[%d]", i), shelf); err != nil {
			return err
		}
	}
	for i, obstacle := range layout.Obstacles {
		if err := check(fmt.Sprintf("obstacles[%d]", i), obstacle); err != nil {
			return err
		}
	}
	if err := check("dropOffBox", layout.DropOffBox); err != nil {
		return err
	}
	if err := check("shop", layout.Shop); err != nil {
		return err
	}

	return nil
}
