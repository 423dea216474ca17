package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/game"
	"github.com/decker502/deadshelf/pkg/modules"
	"github.com/decker502/deadshelf/pkg/session"
	"github.com/decker502/deadshelf/pkg/types"
	"github.com/decker502/deadshelf/pkg/utils"
)

// shopKeys 商店中购买增益的按键，顺序与 types.AllPerks 一致
var shopKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// GameScene 关卡场景：读取输入驱动 Session，并绘制俯视地图和 HUD
type GameScene struct {
	session      *session.Session
	sceneManager *game.SceneManager
	settings     *game.SettingsManager

	pauseMenu *modules.PauseMenuModule
	mapLayout config.MapLayout
	hudFace   *text.GoXFace
	pointer   utils.PointerTracker

	showOverlay bool
	captured    bool
	frameCount  int
	closed      bool
}

// NewGameScene 创建关卡场景
//
// 参数:
//   - sm: 场景管理器，本局结束时切换到结算场景
//   - settings: 玩家设置（鼠标灵敏度、调试信息开关），为 nil 时使用不保存的默认设置
//   - audio: 暂停菜单的音乐控制，可为 nil
//   - s: 已开始的会话，场景关闭时一并关闭
func NewGameScene(sm *game.SceneManager, settings *game.SettingsManager, audio modules.AudioControl, s *session.Session) *GameScene {
	if settings == nil {
		settings, _ = game.NewSettingsManager(nil)
	}
	lo, hi := s.Bounds()
	scene := &GameScene{
		session:      s,
		sceneManager: sm,
		settings:     settings,
		mapLayout: config.NewMapLayout(config.Bounds{Min: lo, Max: hi},
			config.GameWindowWidth-config.HUDPanelWidth, config.GameWindowHeight),
		hudFace: text.NewGoXFace(basicfont.Face7x13),
	}
	scene.showOverlay = settings.GetSettings().ShowOverlay
	scene.pauseMenu = modules.NewPauseMenuModule(s, settings, audio, modules.PauseMenuCallbacks{
		OnContinue: func() { scene.showOverlay = settings.GetSettings().ShowOverlay },
		OnRestart:  sm.ReloadLevel,
	}, config.GameWindowWidth, config.GameWindowHeight)
	log.Printf("[GameScene] 关卡 %s 开始，会话 %s", s.LevelID(), s.ID())
	return scene
}

// Update 处理输入并推进模拟
func (g *GameScene) Update(deltaTime float64) {
	if g.closed {
		return
	}
	g.frameCount++

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showOverlay = !g.showOverlay
		g.settings.SetShowOverlay(g.showOverlay)
		if err := g.settings.Save(); err != nil {
			log.Printf("[GameScene] 保存设置失败: %v", err)
		}
	}

	if g.pauseMenu.IsActive() {
		g.setCaptured(false)
		g.pauseMenu.Update(deltaTime)
		return
	}

	if g.session.ShopOpen() {
		g.setCaptured(false)
		g.updateShop()
	} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pauseMenu.Show()
		return
	} else {
		g.setCaptured(true)
		g.updatePlaying(deltaTime)
	}

	g.session.Update(deltaTime)

	if g.session.Over() {
		summary := g.session.Summary()
		log.Printf("[GameScene] 本局结束: %s", summary.String())
		g.sceneManager.SwitchTo(NewGameOverScene(g.sceneManager, summary, g.session.Defeated(), g.session.LevelID()))
	}
}

// updatePlaying 战斗中的输入
func (g *GameScene) updatePlaying(deltaTime float64) {
	st := g.settings.GetSettings()
	input := utils.ReadInputState(deltaTime, &g.pointer, st.MouseSensitivity, st.InvertTurn)

	if input.Turn != 0 {
		g.session.Turn(input.Turn)
	}
	if input.Forward != 0 || input.Strafe != 0 {
		g.session.Move(input.Forward, input.Strafe, deltaTime)
	}
	if input.Reload {
		g.session.Reload()
	}
	if input.Interact {
		g.session.Interact()
	}
	if input.Fire {
		g.session.Fire()
	}
}

// updateShop 商店界面的按键
func (g *GameScene) updateShop() {
	for i, key := range shopKeys {
		if i < len(types.AllPerks) && inpututil.IsKeyJustPressed(key) {
			g.session.BuyPerk(types.AllPerks[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.session.UpgradeWeapon()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.session.RefillAmmo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyB) ||
		inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.session.CloseShop()
	}
}

// setCaptured 战斗时锁定鼠标用于转向，商店中释放
func (g *GameScene) setCaptured(captured bool) {
	if g.captured == captured {
		return
	}
	g.captured = captured
	g.pointer.Reset()
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// Draw 绘制地图和 HUD
func (g *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawMap(screen)
	g.drawHUD(screen)
	if g.session.ShopOpen() {
		g.drawShop(screen)
	}
	g.pauseMenu.Draw(screen)
}

// Close 关闭会话并释放鼠标
func (g *GameScene) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.setCaptured(false)
	g.pauseMenu.Cleanup()
	g.session.Close()
	log.Printf("[GameScene] 场景关闭，会话 %s", g.session.ID())
}
