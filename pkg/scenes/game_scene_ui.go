package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/session"
	"github.com/decker502/deadshelf/pkg/types"
)

var (
	hudPanelColor   = color.RGBA{R: 10, G: 10, B: 12, A: 230}
	hudTextColor    = color.RGBA{R: 230, G: 225, B: 210, A: 255}
	promptTextColor = color.RGBA{R: 255, G: 240, B: 170, A: 255}
	shopPanelColor  = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	lowHealthColor  = color.RGBA{R: 230, G: 60, B: 60, A: 255}
)

// hudLines HUD 面板的文字
func hudLines(s *session.Session) []string {
	stats := s.Stats()
	lines := []string{
		fmt.Sprintf("Health  %.0f / %.0f", stats.Health(), stats.MaxHealth()),
	}

	if w := s.Weapon(); w != nil {
		ammo := fmt.Sprintf("Ammo    %d / %d", w.CurrentAmmo, w.ReserveAmmo)
		if w.State == components.WeaponReloading {
			ammo += fmt.Sprintf("  reloading %.1fs", w.ReloadRemaining)
		}
		lines = append(lines, ammo)
		if w.UpgradeLevel > 0 {
			lines = append(lines, fmt.Sprintf("Weapon  %s +%d", w.Name, w.UpgradeLevel))
		}
	}

	lines = append(lines,
		fmt.Sprintf("Points  %d", s.Points()),
		fmt.Sprintf("Kills   %d", s.Kills()),
		fmt.Sprintf("Books   %d shelved, %d carried", s.BooksShelved(), s.BooksCarried()),
		fmt.Sprintf("Time    %.0fs", s.ElapsedTime()),
	)

	var perks []string
	for _, p := range types.AllPerks {
		if s.HasPerk(p) {
			perks = append(perks, p.String())
		}
	}
	for i, p := range perks {
		if i == 0 {
			lines = append(lines, "Perks   "+p)
		} else {
			lines = append(lines, "        "+p)
		}
	}
	return lines
}

// overlayLines 调试信息（F3 切换）
func overlayLines(s *session.Session) []string {
	pos := s.PlayerPosition()
	return []string{
		fmt.Sprintf("Level   %s", s.LevelID()),
		fmt.Sprintf("Spawn   %.1fs", s.TimeUntilNextSpawn()),
		fmt.Sprintf("Enemies %d", len(s.Enemies())),
		fmt.Sprintf("Pos     %.1f, %.1f", pos.X, pos.Z),
	}
}

// shopLines 商店菜单
func shopLines(s *session.Session) []string {
	lines := []string{"SHOP", fmt.Sprintf("Points: %d", s.Points()), ""}
	for i, p := range types.AllPerks {
		if s.HasPerk(p) {
			lines = append(lines, fmt.Sprintf("[%d] %-12s owned", i+1, p.String()))
			continue
		}
		lines = append(lines, fmt.Sprintf("[%d] %-12s %d", i+1, p.String(), s.PerkCost(p)))
	}
	lines = append(lines,
		fmt.Sprintf("[U] %-12s %d", "Upgrade", s.UpgradeCost()),
		fmt.Sprintf("[A] %-12s %d", "Refill Ammo", s.RefillCost()),
		"",
		"[Esc] Close",
	)
	return lines
}

// drawHUD 右侧面板、准星提示和调试信息
func (g *GameScene) drawHUD(screen *ebiten.Image) {
	panelX := float32(config.GameWindowWidth - config.HUDPanelWidth)
	vector.DrawFilledRect(screen, panelX, 0, config.HUDPanelWidth, config.GameWindowHeight, hudPanelColor, false)

	x := float64(panelX) + config.HUDMargin
	y := float64(config.HUDMargin)
	for i, line := range hudLines(g.session) {
		clr := color.Color(hudTextColor)
		if i == 0 && g.session.Stats().Health() < g.session.Stats().MaxHealth()*0.3 {
			clr = lowHealthColor
		}
		g.drawText(screen, line, x, y, clr)
		y += config.HUDLineHeight
	}

	if g.showOverlay {
		y += config.HUDLineHeight
		for _, line := range overlayLines(g.session) {
			g.drawText(screen, line, x, y, hudTextColor)
			y += config.HUDLineHeight
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()), int(x), config.GameWindowHeight-config.HUDMargin-16)
	}

	if prompt := g.session.Prompt(); prompt != "" {
		mapWidth := float64(config.GameWindowWidth - config.HUDPanelWidth)
		w, _ := text.Measure(prompt, g.hudFace, 0)
		g.drawText(screen, prompt, (mapWidth-w)/2, config.GameWindowHeight-2*config.HUDMargin, promptTextColor)
	}
}

// drawShop 商店菜单覆盖在地图上
func (g *GameScene) drawShop(screen *ebiten.Image) {
	lines := shopLines(g.session)
	const width = 260
	height := float32(len(lines)*config.HUDLineHeight + 2*config.HUDMargin)
	mapWidth := float32(config.GameWindowWidth - config.HUDPanelWidth)
	x := (mapWidth - width) / 2
	y := (config.GameWindowHeight - height) / 2
	vector.DrawFilledRect(screen, x, y, width, height, shopPanelColor, false)

	ty := float64(y) + config.HUDMargin
	for _, line := range lines {
		g.drawText(screen, line, float64(x)+config.HUDMargin, ty, hudTextColor)
		ty += config.HUDLineHeight
	}
}

func (g *GameScene) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, g.hudFace, op)
}
