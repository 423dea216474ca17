package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStore 在临时 HOME 下打开独立的 gdata 存储
func openTestStore(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return m
}

func TestDefaultSettings(t *testing.T) {
	got := *DefaultSettings()
	want := GameSettings{
		MusicVolume:      0.7,
		SoundVolume:      0.8,
		MusicEnabled:     true,
		SoundEnabled:     true,
		MouseSensitivity: 1.0,
	}
	if got != want {
		t.Errorf("DefaultSettings: got %+v, want %+v", got, want)
	}
}

func TestSettingsManagerMemoryOnly(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil || sm == nil {
		t.Fatalf("NewSettingsManager(nil): %v", err)
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("memory-only manager should start from defaults: %+v", sm.GetSettings())
	}

	sm.SetMusicVolume(0.2)
	if err := sm.Save(); err != nil {
		t.Errorf("Save without a store should be a no-op, got %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load without a store: %v", err)
	}
	if sm.GetSettings().MusicVolume != 0.7 {
		t.Errorf("Load without a store resets to defaults, got %v", sm.GetSettings().MusicVolume)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t, "deadshelf_test_roundtrip")

	first, _ := NewSettingsManager(store)
	if *first.GetSettings() != *DefaultSettings() {
		t.Fatalf("empty store should give defaults: %+v", first.GetSettings())
	}

	first.SetMusicVolume(0.5)
	first.SetSoundVolume(0.6)
	first.SetMusicEnabled(false)
	first.SetSoundEnabled(false)
	first.SetMouseSensitivity(2.5)
	first.SetInvertTurn(true)
	first.SetFullscreen(true)
	first.SetShowOverlay(true)
	if err := first.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second, _ := NewSettingsManager(store)
	want := GameSettings{
		MusicVolume:      0.5,
		SoundVolume:      0.6,
		MouseSensitivity: 2.5,
		InvertTurn:       true,
		Fullscreen:       true,
		ShowOverlay:      true,
	}
	if got := *second.GetSettings(); got != want {
		t.Errorf("reloaded settings: got %+v, want %+v", got, want)
	}
}

func TestSettingsLoadRepairsStoredValues(t *testing.T) {
	tests := []struct {
		name string
		data string
		want func(s *GameSettings) bool
	}{
		{
			name: "越界音量被截断",
			data: "musicVolume: 3\nsoundVolume: -1\n",
			want: func(s *GameSettings) bool { return s.MusicVolume == 1 && s.SoundVolume == 0 },
		},
		{
			name: "缺失字段保留默认值",
			data: "invertTurn: true\n",
			want: func(s *GameSettings) bool {
				return s.InvertTurn && s.SoundVolume == 0.8 && s.MouseSensitivity == 1 && s.MusicEnabled
			},
		},
		{
			name: "灵敏度过低",
			data: "mouseSensitivity: 0\n",
			want: func(s *GameSettings) bool { return s.MouseSensitivity == MinMouseSensitivity },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t, "deadshelf_test_repair")
			if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte(tt.data)); err != nil {
				t.Fatalf("SaveObjectProp: %v", err)
			}
			sm, _ := NewSettingsManager(store)
			if !tt.want(sm.GetSettings()) {
				t.Errorf("loaded settings: %+v", sm.GetSettings())
			}
		})
	}
}

func TestSettingsLoadCorruptFallsBack(t *testing.T) {
	store := openTestStore(t, "deadshelf_test_corrupt")
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("musicVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm, err := NewSettingsManager(store)
	if err != nil {
		t.Fatalf("corrupt settings must not fail construction: %v", err)
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("corrupt settings should fall back to defaults: %+v", sm.GetSettings())
	}
	if err := sm.Load(); err == nil {
		t.Error("Load should report the unmarshal error")
	}
}

func TestSettingsClamping(t *testing.T) {
	tests := []struct {
		name  string
		apply func(sm *SettingsManager, v float64)
		get   func(s *GameSettings) float64
		in    float64
		want  float64
	}{
		{"音乐音量下限", (*SettingsManager).SetMusicVolume, func(s *GameSettings) float64 { return s.MusicVolume }, -0.5, 0},
		{"音乐音量上限", (*SettingsManager).SetMusicVolume, func(s *GameSettings) float64 { return s.MusicVolume }, 1.5, 1},
		{"音乐音量正常", (*SettingsManager).SetMusicVolume, func(s *GameSettings) float64 { return s.MusicVolume }, 0.3, 0.3},
		{"音效音量下限", (*SettingsManager).SetSoundVolume, func(s *GameSettings) float64 { return s.SoundVolume }, -1, 0},
		{"音效音量上限", (*SettingsManager).SetSoundVolume, func(s *GameSettings) float64 { return s.SoundVolume }, 2, 1},
		{"灵敏度下限", (*SettingsManager).SetMouseSensitivity, func(s *GameSettings) float64 { return s.MouseSensitivity }, 0, MinMouseSensitivity},
		{"灵敏度上限", (*SettingsManager).SetMouseSensitivity, func(s *GameSettings) float64 { return s.MouseSensitivity }, 10, MaxMouseSensitivity},
		{"灵敏度正常", (*SettingsManager).SetMouseSensitivity, func(s *GameSettings) float64 { return s.MouseSensitivity }, 1.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm, _ := NewSettingsManager(nil)
			tt.apply(sm, tt.in)
			if got := tt.get(sm.GetSettings()); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettingsToggles(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetMusicEnabled(false)
	sm.SetSoundEnabled(false)
	sm.SetInvertTurn(true)
	sm.SetFullscreen(true)
	sm.SetShowOverlay(true)

	s := sm.GetSettings()
	if s.MusicEnabled || s.SoundEnabled {
		t.Error("audio toggles should be off")
	}
	if !s.InvertTurn || !s.Fullscreen || !s.ShowOverlay {
		t.Errorf("toggles not applied: %+v", s)
	}
}
