package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/deadshelf/pkg/utils"
)

func TestSelectSpawnPointExcludesVisiblePoints(t *testing.T) {
	ahead := utils.Vec3{Z: 10}
	behind := utils.Vec3{Z: -10}
	side := utils.Vec3{X: 10}
	candidates := []utils.Vec3{ahead, behind, side}

	rng := rand.New(rand.NewSource(42))
	seen := map[utils.Vec3]int{}
	for i := 0; i < 1000; i++ {
		p, ok := SelectSpawnPoint(utils.Zero, utils.Forward, candidates, rng)
		if !ok {
			t.Fatal("expected a valid spawn point")
		}
		if p == ahead {
			t.Fatalf("selected a point in front of the player: %v", p)
		}
		seen[p]++
	}

	if seen[behind] == 0 || seen[side] == 0 {
		t.Errorf("selection should cover every valid point, got %v", seen)
	}
}

func TestSelectSpawnPointNoValidCandidate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name       string
		candidates []utils.Vec3
	}{
		{"没有候选点", nil},
		{"全部在视野内", []utils.Vec3{{Z: 5}, {X: 1, Z: 5}, {X: -1, Z: 8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := SelectSpawnPoint(utils.Zero, utils.Forward, tt.candidates, rng); ok {
				t.Error("expected no spawn point")
			}
		})
	}
}

func TestSelectSpawnPointUsesPlayerPosition(t *testing.T) {
	// 玩家站在 z=20 面向 +Z，z=10 的点在身后
	p, ok := SelectSpawnPoint(utils.Vec3{Z: 20}, utils.Forward, []utils.Vec3{{Z: 10}, {Z: 30}}, &seqRand{})
	if !ok {
		t.Fatal("expected a spawn point")
	}
	if p != (utils.Vec3{Z: 10}) {
		t.Errorf("got %v, want the point behind the player", p)
	}
}

func TestSelectSpawnPointUnnormalizedForward(t *testing.T) {
	p, ok := SelectSpawnPoint(utils.Zero, utils.Vec3{X: 5}, []utils.Vec3{{X: 10}, {X: -10}}, &seqRand{})
	if !ok || p != (utils.Vec3{X: -10}) {
		t.Errorf("got %v/%v, want (-10,0,0)", p, ok)
	}
}
