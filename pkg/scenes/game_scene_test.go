package scenes

import (
	"image/color"
	"strings"
	"testing"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/session"
)

const testLevel = `
id: hall
bounds:
  min: {x: -10, y: 0, z: -10}
  max: {x: 10, y: 0, z: 10}
playerStart: {x: 0, y: 0, z: 0}
spawnPoints:
  - {x: 8, y: 0, z: -8}
bookshelves:
  - position: {x: -5, y: 1, z: 0}
    halfExtents: {x: 0.5, y: 1, z: 1}
dropOffBox:
  position: {x: 0, y: 1, z: 3}
  halfExtents: {x: 0.5, y: 1, z: 0.5}
shop:
  position: {x: 5, y: 1, z: 0}
  halfExtents: {x: 1, y: 1, z: 0.5}
`

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	layout, err := config.ParseLevelLayout([]byte(testLevel))
	if err != nil {
		t.Fatalf("ParseLevelLayout: %v", err)
	}
	s, err := session.New(session.Config{Game: config.DefaultGameConfig(), Level: layout, Seed: 7})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestHUDLines(t *testing.T) {
	s := newTestSession(t)
	lines := hudLines(s)

	want := []string{
		"Health  100 / 100",
		"Ammo    40 / 200",
		"Points  0",
		"Kills   0",
		"Books   0 shelved, 0 carried",
		"Time    0s",
	}
	if len(lines) != len(want) {
		t.Fatalf("hud lines: got %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestHUDLinesReloading(t *testing.T) {
	s := newTestSession(t)
	s.Fire()
	s.Reload()

	lines := hudLines(s)
	if !strings.Contains(lines[1], "39 / 200") || !strings.Contains(lines[1], "reloading 3.5s") {
		t.Errorf("ammo line while reloading: %q", lines[1])
	}
}

func TestShopLines(t *testing.T) {
	s := newTestSession(t)
	lines := shopLines(s)

	tests := []struct {
		name string
		want string
	}{
		{"增益1", "[1] Juggernaut"},
		{"增益4", "[4] Double Tap"},
		{"升级", "[U] Upgrade"},
		{"补弹", "[A] Refill Ammo"},
		{"关闭", "[Esc] Close"},
	}
	joined := strings.Join(lines, "\n")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(joined, tt.want) {
				t.Errorf("shop menu missing %q:\n%s", tt.want, joined)
			}
		})
	}
	if !strings.Contains(lines[3], "2500") {
		t.Errorf("juggernaut cost: %q", lines[3])
	}
}

func TestOverlayLines(t *testing.T) {
	s := newTestSession(t)
	lines := overlayLines(s)
	if lines[0] != "Level   hall" {
		t.Errorf("level line: got %q", lines[0])
	}
	if lines[2] != "Enemies 1" {
		t.Errorf("enemy line: got %q", lines[2])
	}
}

func TestPropColor(t *testing.T) {
	tests := []struct {
		name string
		prop session.PropView
		want any
	}{
		{"书架", session.PropView{Kind: components.ColliderBookshelf}, bookshelfColor},
		{"目标书架", session.PropView{Kind: components.ColliderBookshelf, Highlighted: true}, targetShelfColor},
		{"取书箱", session.PropView{Kind: components.ColliderDropOffBox}, dropOffColor},
		{"商店", session.PropView{Kind: components.ColliderShop}, shopColor},
		{"障碍物", session.PropView{Kind: components.ColliderObstacle}, obstacleColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := propColor(tt.prop); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnemyColorFor(t *testing.T) {
	if got := enemyColorFor(session.EnemyView{State: components.EnemyPursuing}); got != enemyColor {
		t.Errorf("pursuing: got %v", got)
	}
	if got := enemyColorFor(session.EnemyView{State: components.EnemyAttacking, Attacking: true}); got != enemyAttackColor {
		t.Errorf("attacking: got %v", got)
	}
	if got := enemyColorFor(session.EnemyView{State: components.EnemyDead, Attacking: true}); got != enemyDeadColor {
		t.Errorf("dead: got %v", got)
	}
}

func TestNextLevel(t *testing.T) {
	ids := []string{"cellar", "library"}
	tests := []struct {
		name    string
		ids     []string
		current string
		want    string
	}{
		{"下一关", ids, "cellar", "library"},
		{"末尾回到第一关", ids, "library", "cellar"},
		{"未知关卡", ids, "attic", "cellar"},
		{"空列表", nil, "library", "library"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextLevel(tt.ids, tt.current); got != tt.want {
				t.Errorf("nextLevel(%v, %q) = %q, want %q", tt.ids, tt.current, got, tt.want)
			}
		})
	}
}

func TestFadeColor(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  uint8
	}{
		{"不透明", 1, 200},
		{"半透明", 0.5, 100},
		{"完全透明", 0, 0},
		{"超出范围", 2, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fadeColor(color.RGBA{R: 200, G: 200, B: 200, A: 200}, tt.alpha)
			if c.R != tt.want || c.A != tt.want {
				t.Errorf("fadeColor(%v): got %v, want channel %d", tt.alpha, c, tt.want)
			}
		})
	}
}
