package scenes

import (
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/embedded"
	"github.com/decker502/deadshelf/pkg/game"
	"github.com/decker502/deadshelf/pkg/utils"
)

var (
	gameOverBackground = color.RGBA{R: 20, G: 4, B: 6, A: 255}
	gameOverTitleColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

// GameOverScene 结算画面
// R 或点击重新开始本关，N 进入下一关
type GameOverScene struct {
	sceneManager *game.SceneManager
	summary      game.RoundSummary
	defeated     bool
	levelID      string
	face         *text.GoXFace
}

// NewGameOverScene 创建结算画面
func NewGameOverScene(sm *game.SceneManager, summary game.RoundSummary, defeated bool, levelID string) *GameOverScene {
	return &GameOverScene{
		sceneManager: sm,
		summary:      summary,
		defeated:     defeated,
		levelID:      levelID,
		face:         text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update 等待玩家选择
func (s *GameOverScene) Update(deltaTime float64) {
	clicked, _, _ := utils.IsJustTouchedOrClicked()
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		log.Printf("[GameOverScene] 重新开始关卡 %s", s.levelID)
		s.sceneManager.LoadLevel(s.levelID)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		ids, err := embedded.LevelIDs()
		if err != nil {
			log.Printf("[GameOverScene] 读取关卡列表失败: %v", err)
			return
		}
		next := nextLevel(ids, s.levelID)
		log.Printf("[GameOverScene] 进入下一关 %s", next)
		s.sceneManager.LoadLevel(next)
	}
}

// title 结算标题
func (s *GameOverScene) title() string {
	if s.defeated {
		return "YOU DIED"
	}
	return "ROUND OVER"
}

// Draw 标题、结算数据和操作提示
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(gameOverBackground)

	y := float64(config.GameWindowHeight) / 3
	s.drawCentered(screen, s.title(), y, gameOverTitleColor)
	y += 2 * config.HUDLineHeight

	for _, line := range strings.Split(s.summary.String(), "\n") {
		s.drawCentered(screen, line, y, hudTextColor)
		y += config.HUDLineHeight
	}

	y += 2 * config.HUDLineHeight
	s.drawCentered(screen, "[R] Restart    [N] Next Level", y, promptTextColor)
}

func (s *GameOverScene) drawCentered(screen *ebiten.Image, str string, y float64, clr color.Color) {
	w, _ := text.Measure(str, s.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((config.GameWindowWidth-w)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}

// nextLevel 关卡列表中的下一关，末尾回到第一关
// 当前关卡不在列表中时返回第一关
func nextLevel(ids []string, current string) string {
	if len(ids) == 0 {
		return current
	}
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}
