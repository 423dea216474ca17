// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析参数和启动循环。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/embedded"
	"github.com/decker502/deadshelf/pkg/game"
	"github.com/decker502/deadshelf/pkg/scenes"
	"github.com/decker502/deadshelf/pkg/session"
	"github.com/decker502/deadshelf/pkg/types"
)

// DefaultLevel 未指定关卡时加载的关卡
const DefaultLevel = "library"

// settingsAppName gdata 存储使用的应用名
const settingsAppName = "deadshelf"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定要加载的关卡（如 "cellar"），为空则加载 DefaultLevel
	Level string
}

// App 实现 ebiten.Game：把帧转发给场景管理器，处理全屏切换
type App struct {
	sceneManager *game.SceneManager
	audioManager *game.AudioManager
	settings     *game.SettingsManager
	gameConfig   *config.GameConfig
	window       windowState
	verbose      bool
}

// windowState 退出全屏后窗口管理器需要几帧才能接受新尺寸
type windowState struct {
	resetIn int // >0 时倒数，归零时恢复窗口尺寸
}

func (w *windowState) tick() {
	if w.resetIn <= 0 {
		return
	}
	w.resetIn--
	if w.resetIn == 0 {
		ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
		log.Printf("[App] Window size restored to %dx%d", config.GameWindowWidth, config.GameWindowHeight)
	}
}

// NewApp 加载配置与设置、启动音频并进入第一个关卡
// 调用前必须先 embedded.Init()
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := embedded.LoadGameConfig()
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	level := cfg.Level
	if level == "" {
		level = DefaultLevel
	}
	if _, err := embedded.LoadLevel(level); err != nil {
		return nil, fmt.Errorf("关卡加载失败: %w", err)
	}

	settings := game.OpenSettingsManager(settingsAppName)
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	audioManager := game.NewAudioManager(audio.NewContext(48000), settings, rand.New(rand.NewSource(time.Now().UnixNano())))
	audioManager.PreloadSounds(types.AllCues)
	audioManager.PlayRandomMusic()

	a := &App{
		sceneManager: game.NewSceneManager(),
		audioManager: audioManager,
		settings:     settings,
		gameConfig:   gameConfig,
		verbose:      cfg.Verbose,
	}
	a.sceneManager.SetSceneFactory(a.newLevelScene)

	log.Printf("[App] Starting level: %s", level)
	a.sceneManager.LoadLevel(level)
	if a.sceneManager.GetCurrentScene() == nil {
		return nil, fmt.Errorf("无法创建关卡场景: %s", level)
	}
	return a, nil
}

// newLevelScene 场景工厂：每次加载（含重新开始）都创建全新的会话
func (a *App) newLevelScene(levelID string) game.Scene {
	layout, err := embedded.LoadLevel(levelID)
	if err != nil {
		log.Printf("[App] 关卡 %s 加载失败: %v", levelID, err)
		return nil
	}
	s, err := session.New(session.Config{
		Game:     a.gameConfig,
		Level:    layout,
		Audio:    a.audioManager,
		Reporter: game.LogSummaryReporter{},
	})
	if err != nil {
		log.Printf("[App] 会话创建失败: %v", err)
		return nil
	}
	return scenes.NewGameScene(a.sceneManager, a.settings, a.audioManager, s)
}

// Update 每个 tick 调用一次
func (a *App) Update() error {
	a.window.tick()
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// toggleFullscreen 切换全屏并保存到设置
func (a *App) toggleFullscreen() {
	full := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(full)
	if !full {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.window.resetIn = 3
	}

	a.settings.SetFullscreen(full)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] 保存设置失败: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 关闭当前场景并停止音乐（窗口关闭时调用）
func (a *App) Shutdown() {
	a.sceneManager.Close()
	a.audioManager.StopMusic()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
