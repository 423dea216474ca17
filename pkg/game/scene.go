package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景（关卡、结算画面）
// 每个场景有自己的更新和绘制逻辑
type Scene interface {
	// Update 按帧间隔（秒）推进场景
	Update(deltaTime float64)

	// Draw 绘制到屏幕
	Draw(screen *ebiten.Image)
}

// Closer 可选接口：场景切换或程序退出前释放资源
type Closer interface {
	Close()
}
