package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeScene 记录收到的调用
type fakeScene struct {
	level   string
	updates []float64
	draws   int
	closes  int
}

func (f *fakeScene) Update(deltaTime float64)  { f.updates = append(f.updates, deltaTime) }
func (f *fakeScene) Draw(screen *ebiten.Image) { f.draws++ }
func (f *fakeScene) Close()                    { f.closes++ }

// drawOnly 没有实现 Closer 的场景
type drawOnly struct{ draws int }

func (d *drawOnly) Update(float64)     {}
func (d *drawOnly) Draw(*ebiten.Image) { d.draws++ }

func TestSceneManagerWithoutScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil || sm.CurrentLevel() != "" {
		t.Fatal("new manager should be empty")
	}
	// 没有场景时各操作都是空操作
	sm.Update(1.0 / 60)
	sm.Draw(ebiten.NewImage(16, 16))
	sm.ReloadLevel()
	sm.LoadLevel("library")
	sm.Close()
	if sm.GetCurrentScene() != nil {
		t.Error("LoadLevel without a factory must not create a scene")
	}
}

func TestSceneManagerRoutesFrames(t *testing.T) {
	sm := NewSceneManager()
	first, second := &fakeScene{}, &fakeScene{}
	screen := ebiten.NewImage(16, 16)

	sm.SwitchTo(first)
	sm.Update(0.016)
	sm.Draw(screen)

	sm.SwitchTo(second)
	sm.Update(0.033)
	sm.Draw(screen)
	sm.Draw(screen)

	if len(first.updates) != 1 || first.updates[0] != 0.016 || first.draws != 1 {
		t.Errorf("first scene: %+v", first)
	}
	if len(second.updates) != 1 || second.updates[0] != 0.033 || second.draws != 2 {
		t.Errorf("second scene: %+v", second)
	}
}

func TestSceneManagerSwitchClosesPrevious(t *testing.T) {
	tests := []struct {
		name       string
		next       func(prev *fakeScene) Scene
		wantCloses int
	}{
		{"切换到新场景", func(*fakeScene) Scene { return &fakeScene{} }, 1},
		{"切换到自身", func(prev *fakeScene) Scene { return prev }, 0},
		{"切换到非 Closer 场景", func(*fakeScene) Scene { return &drawOnly{} }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			prev := &fakeScene{}
			sm.SwitchTo(prev)
			sm.SwitchTo(tt.next(prev))
			if prev.closes != tt.wantCloses {
				t.Errorf("closes: got %d, want %d", prev.closes, tt.wantCloses)
			}
		})
	}
}

func TestSceneManagerLevels(t *testing.T) {
	sm := NewSceneManager()
	var built []*fakeScene
	sm.SetSceneFactory(func(levelID string) Scene {
		if levelID == "missing" {
			return nil
		}
		s := &fakeScene{level: levelID}
		built = append(built, s)
		return s
	})

	sm.LoadLevel("library")
	if sm.CurrentLevel() != "library" || sm.GetCurrentScene() != built[0] {
		t.Fatalf("LoadLevel: level=%q scene=%v", sm.CurrentLevel(), sm.GetCurrentScene())
	}

	// 重新开始：新建场景并关闭旧场景
	sm.ReloadLevel()
	if len(built) != 2 || built[1].level != "library" {
		t.Fatalf("ReloadLevel should build a fresh library scene, built %d", len(built))
	}
	if built[0].closes != 1 {
		t.Error("old scene should be closed on reload")
	}

	// 加载失败保留当前关卡
	sm.LoadLevel("missing")
	if sm.CurrentLevel() != "library" || sm.GetCurrentScene() != built[1] {
		t.Errorf("failed load changed state: level=%q", sm.CurrentLevel())
	}

	sm.LoadLevel("cellar")
	if sm.CurrentLevel() != "cellar" || built[1].closes != 1 {
		t.Errorf("switch to cellar: level=%q closes=%d", sm.CurrentLevel(), built[1].closes)
	}

	sm.Close()
	if built[2].closes != 1 || sm.GetCurrentScene() != nil {
		t.Error("Close should close the active scene and clear it")
	}
	sm.Close()
	if built[2].closes != 1 {
		t.Error("second Close must not close again")
	}
}
