package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/deadshelf/pkg/utils"
)

const validLayout = `
id: test
bounds:
  min: {x: -10, y: 0, z: -10}
  max: {x: 10, y: 0, z: 10}
playerStart: {x: 0, y: 0, z: 0}
spawnPoints:
  - {x: 5, y: 0, z: -5}
  - {x: -5, y: 0, z: -5}
bookshelves:
  - position: {x: 3, y: 1, z: 3}
    halfExtents: {x: 1, y: 1, z: 0.5}
dropOffBox:
  position: {x: 0, y: 0.5, z: -2}
  halfExtents: {x: 0.5, y: 0.5, z: 0.5}
shop:
  position: {x: 0, y: 1, z: 8}
  halfExtents: {x: 1, y: 1, z: 0.5}
`

func TestLoadLevelLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(validLayout), 0644); err != nil {
		t.Fatalf("Failed to write test layout: %v", err)
	}

	layout, err := LoadLevelLayout(path)
	if err != nil {
		t.Fatalf("LoadLevelLayout failed: %v", err)
	}

	if layout.ID != "test" {
		t.Errorf("ID: got %q, want %q", layout.ID, "test")
	}
	if len(layout.SpawnPoints) != 2 {
		t.Fatalf("SpawnPoints: got %d, want 2", len(layout.SpawnPoints))
	}
	if layout.SpawnPoints[0] != (utils.Vec3{X: 5, Z: -5}) {
		t.Errorf("SpawnPoints[0]: got %v", layout.SpawnPoints[0])
	}
	if layout.Bookshelves[0].HalfExtents.Z != 0.5 {
		t.Errorf("bookshelf halfExtents.z: got %v, want 0.5", layout.Bookshelves[0].HalfExtents.Z)
	}
}

func TestParseLevelLayoutValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "缺少ID",
			mutate:  func(s string) string { return strings.Replace(s, "id: test", "", 1) },
			wantErr: "id",
		},
		{
			name: "没有刷怪点",
			mutate: func(s string) string {
				return strings.Replace(s, "  - {x: 5, y: 0, z: -5}\n  - {x: -5, y: 0, z: -5}\n", "", 1)
			},
			wantErr: "spawn point",
		},
		{
			name:    "出生点越界",
			mutate:  func(s string) string { return strings.Replace(s, "playerStart: {x: 0", "playerStart: {x: 50", 1) },
			wantErr: "playerStart",
		},
		{
			name:    "书架尺寸非法",
			mutate:  func(s string) string { return strings.Replace(s, "halfExtents: {x: 1, y: 1, z: 0.5}\ndropOffBox", "halfExtents: {x: 0, y: 1, z: 0.5}\ndropOffBox", 1) },
			wantErr: "bookshelves[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelLayout([]byte(tt.mutate(validLayout)))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Min: utils.Vec3{X: -1, Z: -1}, Max: utils.Vec3{X: 1, Z: 1}}
	got := b.Clamp(utils.Vec3{X: 5, Y: 2, Z: -3})
	if got != (utils.Vec3{X: 1, Y: 2, Z: -1}) {
		t.Errorf("Clamp: got %v", got)
	}
}
