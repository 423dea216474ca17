package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := validateGameConfig(cfg); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	// 原版数值
	if cfg.Weapon.MagazineSize != 40 || cfg.Weapon.MaxReserveAmmo != 200 {
		t.Errorf("weapon ammo: got %d/%d, want 40/200", cfg.Weapon.MagazineSize, cfg.Weapon.MaxReserveAmmo)
	}
	if cfg.Enemy.AttackDelay != 0.9 {
		t.Errorf("enemy.attackDelay: got %v, want 0.9", cfg.Enemy.AttackDelay)
	}
	if cfg.Round.SpawnInterval != 10 {
		t.Errorf("round.spawnInterval: got %v, want 10", cfg.Round.SpawnInterval)
	}
}

func TestLoadGameConfig(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("部分覆盖保留默认值", func(t *testing.T) {
		content := `
weapon:
  magazineSize: 30
round:
  spawnInterval: 4.5
`
		path := filepath.Join(tempDir, "partial.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadGameConfig(path)
		if err != nil {
			t.Fatalf("LoadGameConfig failed: %v", err)
		}
		if cfg.Weapon.MagazineSize != 30 {
			t.Errorf("magazineSize: got %d, want 30", cfg.Weapon.MagazineSize)
		}
		if cfg.Weapon.MaxReserveAmmo != 200 {
			t.Errorf("maxReserveAmmo should keep default 200, got %d", cfg.Weapon.MaxReserveAmmo)
		}
		if cfg.Round.SpawnInterval != 4.5 {
			t.Errorf("spawnInterval: got %v, want 4.5", cfg.Round.SpawnInterval)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadGameConfig(filepath.Join(tempDir, "missing.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("YAML 语法错误", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("weapon: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadGameConfig(path); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestParseGameConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"弹匣为零", "weapon:\n  magazineSize: 0\n", "magazineSize"},
		{"射击间隔为负", "weapon:\n  fireInterval: -1\n", "fireInterval"},
		{"刷新间隔大于换弹时间", "weapon:\n  reloadTickInterval: 10\n", "reloadTickInterval"},
		{"敌人血量为零", "enemy:\n  baseHealth: 0\n", "baseHealth"},
		{"刷怪间隔为零", "round:\n  spawnInterval: 0\n", "spawnInterval"},
		{"价格为负", "shop:\n  refillCost: -5\n", "refillCost"},
		{"书本上限为零", "objective:\n  maxBooks: 0\n", "maxBooks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}
