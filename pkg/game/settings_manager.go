package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 鼠标灵敏度范围
const (
	MinMouseSensitivity = 0.1
	MaxMouseSensitivity = 5.0
)

// GameSettings 玩家偏好设置
// 只保存偏好，不保存游戏进度
type GameSettings struct {
	// 音频设置
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 操作设置
	MouseSensitivity float64 `yaml:"mouseSensitivity"` // 鼠标转向灵敏度倍率
	InvertTurn       bool    `yaml:"invertTurn"`       // 反转水平转向

	// 显示设置
	Fullscreen  bool `yaml:"fullscreen"`  // 启动时是否全屏
	ShowOverlay bool `yaml:"showOverlay"` // 显示调试信息（刷怪倒计时等）
}

// DefaultSettings 首次启动时的设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:      0.7,
		SoundVolume:      0.8,
		MusicEnabled:     true,
		SoundEnabled:     true,
		MouseSensitivity: 1.0,
	}
}

// normalize 修正越界数值（旧版本或手工编辑的设置文件）
func (s *GameSettings) normalize() {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SoundVolume = clampVolume(s.SoundVolume)
	s.MouseSensitivity = clampSensitivity(s.MouseSensitivity)
}

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// SettingsManager 持有当前偏好设置，通过 gdata 以 YAML 持久化
// store 为 nil 时只在内存中生效
type SettingsManager struct {
	store    *gdata.Manager
	settings *GameSettings
}

// OpenSettingsManager 打开应用的 gdata 存储，失败时退化为内存设置
func OpenSettingsManager(appName string) *SettingsManager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		store = nil
	}
	sm, _ := NewSettingsManager(store)
	return sm
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败只记录日志并使用默认值，error 始终为 nil
func NewSettingsManager(store *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm, nil
}

// Load 重新读取存储；缺失字段保留默认值，出错时回到默认设置
func (sm *SettingsManager) Load() error {
	loaded, err := sm.read()
	if err != nil {
		sm.settings = DefaultSettings()
		return err
	}
	sm.settings = loaded
	return nil
}

func (sm *SettingsManager) read() (*GameSettings, error) {
	s := DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return s, nil
	}
	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.normalize()
	log.Printf("[SettingsManager] Settings loaded")
	return s, nil
}

// Save 写入存储，内存模式下什么也不做
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 返回当前设置；修改后需调用 Save 才会持久化
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

func (sm *SettingsManager) SetMusicVolume(v float64) { sm.settings.MusicVolume = clampVolume(v) }
func (sm *SettingsManager) SetSoundVolume(v float64) { sm.settings.SoundVolume = clampVolume(v) }
func (sm *SettingsManager) SetMusicEnabled(on bool)  { sm.settings.MusicEnabled = on }
func (sm *SettingsManager) SetSoundEnabled(on bool)  { sm.settings.SoundEnabled = on }
func (sm *SettingsManager) SetInvertTurn(on bool)    { sm.settings.InvertTurn = on }
func (sm *SettingsManager) SetFullscreen(on bool)    { sm.settings.Fullscreen = on }
func (sm *SettingsManager) SetShowOverlay(on bool)   { sm.settings.ShowOverlay = on }

// SetMouseSensitivity 限制在 [MinMouseSensitivity, MaxMouseSensitivity]
func (sm *SettingsManager) SetMouseSensitivity(v float64) {
	sm.settings.MouseSensitivity = clampSensitivity(v)
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampSensitivity(v float64) float64 {
	return math.Max(MinMouseSensitivity, math.Min(MaxMouseSensitivity, v))
}
