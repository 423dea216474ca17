package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/session"
	"github.com/decker502/deadshelf/pkg/utils"
)

// 画面配色
var (
	backgroundColor   = color.RGBA{R: 18, G: 16, B: 20, A: 255}
	floorColor        = color.RGBA{R: 42, G: 36, B: 32, A: 255}
	bookshelfColor    = color.RGBA{R: 110, G: 72, B: 40, A: 255}
	targetShelfColor  = color.RGBA{R: 230, G: 190, B: 60, A: 255}
	dropOffColor      = color.RGBA{R: 70, G: 110, B: 170, A: 255}
	shopColor         = color.RGBA{R: 60, G: 150, B: 90, A: 255}
	obstacleColor     = color.RGBA{R: 90, G: 90, B: 96, A: 255}
	enemyColor        = color.RGBA{R: 170, G: 40, B: 40, A: 255}
	enemyAttackColor  = color.RGBA{R: 240, G: 130, B: 30, A: 255}
	enemyDeadColor    = color.RGBA{R: 70, G: 30, B: 30, A: 255}
	playerColor       = color.RGBA{R: 235, G: 235, B: 225, A: 255}
	hitColor          = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	objectiveColor    = color.RGBA{R: 230, G: 190, B: 60, A: 255}
	lookTargetOutline = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// 敌人在地图上的半径（米）
const enemyDrawRadius = 0.4

// propColor 静态物体的填充色
func propColor(p session.PropView) color.Color {
	switch p.Kind {
	case components.ColliderBookshelf:
		if p.Highlighted {
			return targetShelfColor
		}
		return bookshelfColor
	case components.ColliderDropOffBox:
		return dropOffColor
	case components.ColliderShop:
		return shopColor
	}
	return obstacleColor
}

// enemyColorFor 敌人颜色随状态变化
func enemyColorFor(e session.EnemyView) color.Color {
	switch {
	case e.State == components.EnemyDead:
		return enemyDeadColor
	case e.Attacking:
		return enemyAttackColor
	}
	return enemyColor
}

// fadeColor 按透明度缩放（RGBA 是预乘 alpha）
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// drawMap 俯视图：地板、静态物体、命中特效、敌人、玩家和副目标箭头
func (g *GameScene) drawMap(screen *ebiten.Image) {
	m := g.mapLayout
	x0, y0 := m.ToScreen(utils.Vec3{X: m.Min.X, Z: m.Max.Z})
	x1, y1 := m.ToScreen(utils.Vec3{X: m.Max.X, Z: m.Min.Z})
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), floorColor, false)

	lookID, _, hasLook := g.session.LookTarget()
	for _, p := range g.session.Props() {
		g.drawBox(screen, p.Center, p.HalfExtents, propColor(p))
		if hasLook && p.ID == lookID {
			g.strokeBox(screen, p.Center, p.HalfExtents, lookTargetOutline)
		}
	}

	for _, h := range g.session.HitEffects() {
		x, y := m.ToScreen(h.Position)
		r := float32(3 + 4*h.Fade)
		if h.Critical {
			r += 2
		}
		vector.StrokeCircle(screen, float32(x), float32(y), r, 1.5, fadeColor(hitColor, 1-h.Fade), true)
	}

	for _, e := range g.session.Enemies() {
		x, y := m.ToScreen(e.Position)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(m.Length(enemyDrawRadius)), enemyColorFor(e), true)
		if e.State != components.EnemyDead {
			g.drawFacing(screen, e.Position, e.Forward, 0.6, enemyColorFor(e))
		}
	}

	pos, fwd := g.session.PlayerPosition(), g.session.PlayerForward()
	px, py := m.ToScreen(pos)
	vector.DrawFilledCircle(screen, float32(px), float32(py), float32(m.Length(session.PlayerRadius)), playerColor, true)
	g.drawFacing(screen, pos, fwd, config.FacingLineLength, playerColor)

	g.drawObjectiveArrow(screen, pos)
}

// drawBox 以 XZ 平面投影绘制长方体
func (g *GameScene) drawBox(screen *ebiten.Image, center, half utils.Vec3, clr color.Color) {
	x, y := g.mapLayout.ToScreen(utils.Vec3{X: center.X - half.X, Z: center.Z + half.Z})
	w, h := g.mapLayout.Length(2*half.X), g.mapLayout.Length(2*half.Z)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (g *GameScene) strokeBox(screen *ebiten.Image, center, half utils.Vec3, clr color.Color) {
	x, y := g.mapLayout.ToScreen(utils.Vec3{X: center.X - half.X, Z: center.Z + half.Z})
	w, h := g.mapLayout.Length(2*half.X), g.mapLayout.Length(2*half.Z)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, clr, false)
}

// drawFacing 从位置沿朝向画一条短线
func (g *GameScene) drawFacing(screen *ebiten.Image, pos, forward utils.Vec3, length float64, clr color.Color) {
	x0, y0 := g.mapLayout.ToScreen(pos)
	x1, y1 := g.mapLayout.ToScreen(pos.Add(forward.Flat().Normalize().Scale(length)))
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, clr, true)
}

// drawObjectiveArrow 在玩家身边画指向副目标的箭头
func (g *GameScene) drawObjectiveArrow(screen *ebiten.Image, playerPos utils.Vec3) {
	target := g.session.ObjectivePosition()
	dir := target.Sub(playerPos).Flat()
	if dir.Length() < 1e-6 {
		return
	}
	dir = dir.Normalize()

	px, py := g.mapLayout.ToScreen(playerPos)
	// 屏幕 Y 轴向下对应 -Z
	sx, sy := dir.X, -dir.Z
	offset := g.mapLayout.Length(session.PlayerRadius) + 4
	bx, by := px+sx*offset, py+sy*offset
	tx, ty := bx+sx*config.ObjectiveArrowLength, by+sy*config.ObjectiveArrowLength
	vector.StrokeLine(screen, float32(bx), float32(by), float32(tx), float32(ty), 2, objectiveColor, true)

	const headAngle = math.Pi * 0.8
	for _, a := range []float64{headAngle, -headAngle} {
		hx := sx*math.Cos(a) - sy*math.Sin(a)
		hy := sx*math.Sin(a) + sy*math.Cos(a)
		vector.StrokeLine(screen, float32(tx), float32(ty), float32(tx+hx*8), float32(ty+hy*8), 2, objectiveColor, true)
	}
}
