package embedded

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/decker502/deadshelf/pkg/config"
)

// GameConfigPath 数值配置文件
const GameConfigPath = "data/game.yaml"

// LoadGameConfig 读取数值配置；文件不存在时使用默认值
func LoadGameConfig() (*config.GameConfig, error) {
	if !IsInitialized() {
		return nil, errNotInitialized
	}
	if !Exists(GameConfigPath) {
		log.Printf("[Embedded] %s 不存在，使用默认配置", GameConfigPath)
		return config.DefaultGameConfig(), nil
	}

	data, err := ReadFile(GameConfigPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", GameConfigPath, err)
	}
	return cfg, nil
}

// LoadLevel 读取关卡布局，文件中的 id 必须与文件名一致
func LoadLevel(levelID string) (*config.LevelLayout, error) {
	path := LevelPath(levelID)
	if IsInitialized() && !Exists(path) {
		return nil, fmt.Errorf("level %q: %w", levelID, fs.ErrNotExist)
	}
	data, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", levelID, err)
	}

	layout, err := config.ParseLevelLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if layout.ID != levelID {
		return nil, fmt.Errorf("%s: id %q does not match file name", path, layout.ID)
	}
	return layout, nil
}
