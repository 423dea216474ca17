// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 转向参数
const (
	// MouseTurnPerPixel 鼠标每移动一个像素转过的弧度（灵敏度 1.0 时）
	MouseTurnPerPixel = 0.003
	// KeyTurnSpeed 方向键转向速度（弧度/秒）
	KeyTurnSpeed = 2.5
)

// InputState 一帧的玩家操作
type InputState struct {
	Forward float64 // -1 ~ 1，正数向前
	Strafe  float64 // -1 ~ 1，正数向右
	Turn    float64 // 本帧转过的弧度，正数向右

	Fire     bool // 按住即连续射击，由射速限制
	Reload   bool
	Interact bool
}

// Axis 把一对按键合成为 -1/0/1
func Axis(negative, positive bool) float64 {
	v := 0.0
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}

// TurnFromCursor 鼠标水平位移换算为转向弧度
func TurnFromCursor(dx int, sensitivity float64, invert bool) float64 {
	turn := float64(dx) * MouseTurnPerPixel * sensitivity
	if invert {
		turn = -turn
	}
	return turn
}

// PointerTracker 记录上一帧的鼠标位置，用于计算位移
type PointerTracker struct {
	lastX       int
	initialized bool
}

// Delta 返回本帧鼠标水平位移；第一帧返回 0
func (p *PointerTracker) Delta(x int) int {
	if !p.initialized {
		p.lastX = x
		p.initialized = true
		return 0
	}
	dx := x - p.lastX
	p.lastX = x
	return dx
}

// Reset 下一帧重新取基准（切换场景或光标模式时调用）
func (p *PointerTracker) Reset() {
	p.initialized = false
}

// ReadInputState 读取键盘鼠标
// WASD 移动，方向键或鼠标转向，左键/空格射击，R 换弹，E 交互
func ReadInputState(deltaTime float64, tracker *PointerTracker, sensitivity float64, invert bool) InputState {
	state := InputState{
		Forward: Axis(ebiten.IsKeyPressed(ebiten.KeyS), ebiten.IsKeyPressed(ebiten.KeyW)),
		Strafe:  Axis(ebiten.IsKeyPressed(ebiten.KeyA), ebiten.IsKeyPressed(ebiten.KeyD)),
	}

	keyTurn := Axis(ebiten.IsKeyPressed(ebiten.KeyLeft), ebiten.IsKeyPressed(ebiten.KeyRight))
	state.Turn = keyTurn * KeyTurnSpeed * deltaTime
	if tracker != nil {
		x, _ := ebiten.CursorPosition()
		state.Turn += TurnFromCursor(tracker.Delta(x), sensitivity, invert)
	}

	state.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
	state.Reload = inpututil.IsKeyJustPressed(ebiten.KeyR)
	state.Interact = inpututil.IsKeyJustPressed(ebiten.KeyE)
	return state
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
