package modules

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/deadshelf/pkg/game"
)

// 调整步长
const (
	volumeStep      = 0.1
	sensitivityStep = 0.1
)

// Pauser 被暂停的对象（Session）
type Pauser interface {
	SetPaused(paused bool)
}

// AudioControl 暂停菜单用到的音频操作（AudioManager）
type AudioControl interface {
	PauseMusic()
	ResumeMusic()
	SetMusicVolume(volume float64)
	SetSoundVolume(volume float64)
}

// MenuItem 菜单项
type MenuItem int

const (
	ItemContinue MenuItem = iota
	ItemRestart
	ItemMusicVolume
	ItemSoundVolume
	ItemSensitivity
	ItemInvertTurn
	ItemShowOverlay
	menuItemCount
)

// MenuAction 抽象的菜单操作，键盘映射在 Update 中完成
type MenuAction int

const (
	ActionUp MenuAction = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
)

// PauseMenuCallbacks 暂停菜单回调函数集合
type PauseMenuCallbacks struct {
	OnContinue func() // 关闭菜单后调用（可选）
	OnRestart  func() // "重新开始"
}

var (
	pauseOverlayColor  = color.RGBA{A: 160}
	pausePanelColor    = color.RGBA{R: 24, G: 22, B: 26, A: 240}
	pauseTextColor     = color.RGBA{R: 220, G: 215, B: 200, A: 255}
	pauseSelectedColor = color.RGBA{R: 255, G: 220, B: 110, A: 255}
)

// PauseMenuModule 暂停菜单模块
// 打开时暂停会话和音乐，菜单中可以调整音量、鼠标灵敏度等设置，关闭时保存设置
type PauseMenuModule struct {
	pauser    Pauser
	settings  *game.SettingsManager
	audio     AudioControl
	callbacks PauseMenuCallbacks

	active   bool
	selected MenuItem
	dirty    bool // 设置有改动，关闭时保存

	face         *text.GoXFace
	windowWidth  int
	windowHeight int
}

// NewPauseMenuModule 创建暂停菜单模块
//
// 参数:
//   - pauser: 菜单打开期间暂停的对象
//   - settings: 玩家设置，不能为 nil
//   - audio: 音频控制，可为 nil
//   - callbacks: 按钮回调
func NewPauseMenuModule(pauser Pauser, settings *game.SettingsManager, audio AudioControl, callbacks PauseMenuCallbacks, windowWidth, windowHeight int) *PauseMenuModule {
	return &PauseMenuModule{
		pauser:       pauser,
		settings:     settings,
		audio:        audio,
		callbacks:    callbacks,
		face:         text.NewGoXFace(basicfont.Face7x13),
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
}

// Show 显示暂停菜单
func (m *PauseMenuModule) Show() {
	if m.active {
		return
	}
	m.active = true
	m.selected = ItemContinue
	m.pauser.SetPaused(true)
	if m.audio != nil {
		m.audio.PauseMusic()
	}
	log.Printf("[PauseMenuModule] 暂停")
}

// Hide 隐藏暂停菜单，恢复游戏并保存改动过的设置
func (m *PauseMenuModule) Hide() {
	if !m.active {
		return
	}
	m.active = false
	m.pauser.SetPaused(false)
	if m.audio != nil {
		m.audio.ResumeMusic()
	}
	m.saveSettings()
	log.Printf("[PauseMenuModule] 继续")
}

// Toggle 切换暂停菜单显示/隐藏
func (m *PauseMenuModule) Toggle() {
	if m.active {
		m.Hide()
	} else {
		m.Show()
	}
}

// IsActive 暂停菜单是否打开
func (m *PauseMenuModule) IsActive() bool {
	return m.active
}

// Selected 当前选中的菜单项
func (m *PauseMenuModule) Selected() MenuItem {
	return m.selected
}

// Update 读取键盘：上下选择，左右调整，回车确认，Esc 返回
func (m *PauseMenuModule) Update(deltaTime float64) {
	if !m.active {
		return
	}
	keys := []struct {
		key    ebiten.Key
		action MenuAction
	}{
		{ebiten.KeyUp, ActionUp},
		{ebiten.KeyW, ActionUp},
		{ebiten.KeyDown, ActionDown},
		{ebiten.KeyS, ActionDown},
		{ebiten.KeyLeft, ActionLeft},
		{ebiten.KeyA, ActionLeft},
		{ebiten.KeyRight, ActionRight},
		{ebiten.KeyD, ActionRight},
		{ebiten.KeyEnter, ActionConfirm},
		{ebiten.KeySpace, ActionConfirm},
		{ebiten.KeyEscape, ActionBack},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			m.HandleAction(k.action)
			if !m.active {
				return
			}
		}
	}
}

// HandleAction 执行一次菜单操作
func (m *PauseMenuModule) HandleAction(action MenuAction) {
	if !m.active {
		return
	}
	switch action {
	case ActionUp:
		m.selected = (m.selected + menuItemCount - 1) % menuItemCount
	case ActionDown:
		m.selected = (m.selected + 1) % menuItemCount
	case ActionLeft:
		m.adjust(-1)
	case ActionRight:
		m.adjust(1)
	case ActionConfirm:
		m.confirm()
	case ActionBack:
		m.Hide()
		if m.callbacks.OnContinue != nil {
			m.callbacks.OnContinue()
		}
	}
}

// confirm 回车：按钮执行动作，开关项切换
func (m *PauseMenuModule) confirm() {
	switch m.selected {
	case ItemContinue:
		m.Hide()
		if m.callbacks.OnContinue != nil {
			m.callbacks.OnContinue()
		}
	case ItemRestart:
		m.Hide()
		if m.callbacks.OnRestart != nil {
			m.callbacks.OnRestart()
		}
	case ItemInvertTurn, ItemShowOverlay:
		m.adjust(1)
	}
}

// adjust 左右调整数值项，开关项取反
func (m *PauseMenuModule) adjust(dir float64) {
	st := m.settings.GetSettings()
	switch m.selected {
	case ItemMusicVolume:
		v := st.MusicVolume + dir*volumeStep
		if m.audio != nil {
			m.audio.SetMusicVolume(v)
		} else {
			m.settings.SetMusicVolume(v)
		}
	case ItemSoundVolume:
		v := st.SoundVolume + dir*volumeStep
		if m.audio != nil {
			m.audio.SetSoundVolume(v)
		} else {
			m.settings.SetSoundVolume(v)
		}
	case ItemSensitivity:
		m.settings.SetMouseSensitivity(st.MouseSensitivity + dir*sensitivityStep)
	case ItemInvertTurn:
		m.settings.SetInvertTurn(!st.InvertTurn)
	case ItemShowOverlay:
		m.settings.SetShowOverlay(!st.ShowOverlay)
	default:
		return
	}
	m.dirty = true
}

func (m *PauseMenuModule) saveSettings() {
	if !m.dirty {
		return
	}
	m.dirty = false
	if err := m.settings.Save(); err != nil {
		log.Printf("[PauseMenuModule] 保存设置失败: %v", err)
	}
}

// Lines 菜单文字，顺序与 MenuItem 一致
func (m *PauseMenuModule) Lines() []string {
	st := m.settings.GetSettings()
	return []string{
		"Continue",
		"Restart",
		fmt.Sprintf("Music Volume    %3.0f%%", st.MusicVolume*100),
		fmt.Sprintf("Sound Volume    %3.0f%%", st.SoundVolume*100),
		fmt.Sprintf("Mouse Speed     %.1f", st.MouseSensitivity),
		fmt.Sprintf("Invert Turn     %s", onOff(st.InvertTurn)),
		fmt.Sprintf("Debug Overlay   %s", onOff(st.ShowOverlay)),
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Draw 渲染暂停菜单（遮罩 + 面板 + 菜单项）
func (m *PauseMenuModule) Draw(screen *ebiten.Image) {
	if !m.active {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(m.windowWidth), float32(m.windowHeight), pauseOverlayColor, false)

	lines := m.Lines()
	const (
		panelWidth = 280
		lineHeight = 22
		padding    = 20
	)
	panelHeight := len(lines)*lineHeight + 2*padding + lineHeight
	x := float64(m.windowWidth-panelWidth) / 2
	y := float64(m.windowHeight-panelHeight) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), panelWidth, float32(panelHeight), pausePanelColor, false)

	m.drawText(screen, "PAUSED", x+padding, y+padding, pauseSelectedColor)
	ty := y + padding + lineHeight
	for i, line := range lines {
		clr := pauseTextColor
		prefix := "  "
		if MenuItem(i) == m.selected {
			clr = pauseSelectedColor
			prefix = "> "
		}
		m.drawText(screen, prefix+line, x+padding, ty, clr)
		ty += lineHeight
	}
}

func (m *PauseMenuModule) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, m.face, op)
}

// Cleanup 模块销毁前保存未保存的设置
func (m *PauseMenuModule) Cleanup() {
	m.saveSettings()
}
