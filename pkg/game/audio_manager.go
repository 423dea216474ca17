package game

import (
	"bytes"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// audioChannel 一类声音（音效或音乐）的播放器缓存与设置映射
type audioChannel struct {
	name     string
	players  map[string]*audio.Player
	volume   func(s *GameSettings) float64
	enabled  func(s *GameSettings) bool
	fallback float64 // 没有设置管理器时的音量
}

func newAudioChannel(name string, fallback float64, volume func(*GameSettings) float64, enabled func(*GameSettings) bool) audioChannel {
	return audioChannel{
		name:     name,
		players:  make(map[string]*audio.Player),
		volume:   volume,
		enabled:  enabled,
		fallback: fallback,
	}
}

// AudioManager 播放核心逻辑发出的音效提示和循环背景音乐
//
// 声音全部在首次使用时合成为 PCM，不依赖资源文件。
// context 为 nil 时静音运行（无头模式、测试）。
type AudioManager struct {
	context  *audio.Context
	settings *SettingsManager // 可为 nil
	sfx      audioChannel
	music    audioChannel

	current   *audio.Player
	currentID string
	rng       *rand.Rand
}

// NewAudioManager 创建音频管理器，ctx、sm、rng 都可以为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, rng *rand.Rand) *AudioManager {
	return &AudioManager{
		context:  ctx,
		settings: sm,
		sfx: newAudioChannel("sound", 0.8,
			func(s *GameSettings) float64 { return s.SoundVolume },
			func(s *GameSettings) bool { return s.SoundEnabled }),
		music: newAudioChannel("music", 0.7,
			func(s *GameSettings) float64 { return s.MusicVolume },
			func(s *GameSettings) bool { return s.MusicEnabled }),
		rng: rng,
	}
}

func (am *AudioManager) volumeOf(ch *audioChannel) float64 {
	if am.settings == nil {
		return ch.fallback
	}
	return ch.volume(am.settings.GetSettings())
}

func (am *AudioManager) enabled(ch *audioChannel) bool {
	return am.settings == nil || ch.enabled(am.settings.GetSettings())
}

// player 取缓存的播放器，没有则合成一个
func (am *AudioManager) player(ch *audioChannel, id string) *audio.Player {
	if p, ok := ch.players[id]; ok {
		return p
	}
	if am.context == nil {
		return nil
	}

	rate := am.context.SampleRate()
	var p *audio.Player
	if ch == &am.music {
		pcm := synthesizeMusic(id, rate)
		if pcm == nil {
			log.Printf("[AudioManager] Warning: unknown %s %q", ch.name, id)
			return nil
		}
		var err error
		p, err = am.context.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
		if err != nil {
			log.Printf("[AudioManager] Warning: cannot create %s player %q: %v", ch.name, id, err)
			return nil
		}
	} else {
		pcm := synthesizeCue(id, rate)
		if pcm == nil {
			log.Printf("[AudioManager] Warning: unknown %s %q", ch.name, id)
			return nil
		}
		p = am.context.NewPlayerFromBytes(pcm)
	}
	ch.players[id] = p
	return p
}

// start 从头播放
func (am *AudioManager) start(ch *audioChannel, id string, p *audio.Player) {
	p.SetVolume(am.volumeOf(ch))
	if err := p.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: rewind %s %q: %v", ch.name, id, err)
	}
	p.Play()
}

// PlayCue 实现 types.AudioPlayer
func (am *AudioManager) PlayCue(id string) {
	am.PlaySound(id)
}

// PlaySound 播放一次音效，静音或无法合成时返回 false
func (am *AudioManager) PlaySound(id string) bool {
	if !am.enabled(&am.sfx) {
		return false
	}
	p := am.player(&am.sfx, id)
	if p == nil {
		return false
	}
	am.start(&am.sfx, id, p)
	return true
}

// PlayRandomMusic 随机挑一首背景音乐
func (am *AudioManager) PlayRandomMusic() bool {
	if len(BackgroundTracks) == 0 {
		return false
	}
	idx := 0
	if am.rng != nil {
		idx = am.rng.Intn(len(BackgroundTracks))
	}
	return am.PlayMusic(BackgroundTracks[idx])
}

// PlayMusic 循环播放背景音乐，同一时间只有一首
func (am *AudioManager) PlayMusic(id string) bool {
	if !am.enabled(&am.music) {
		return false
	}
	if am.currentID == id && am.current != nil && am.current.IsPlaying() {
		return true
	}

	am.StopMusic()
	p := am.player(&am.music, id)
	if p == nil {
		return false
	}
	am.start(&am.music, id, p)
	am.current, am.currentID = p, id

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", id, am.volumeOf(&am.music))
	return true
}

// CurrentMusicID 当前背景音乐，没有则为空
func (am *AudioManager) CurrentMusicID() string {
	return am.currentID
}

func (am *AudioManager) StopMusic() {
	if am.current == nil {
		return
	}
	am.current.Pause()
	am.current, am.currentID = nil, ""
}

// PauseMusic 暂停但保留当前曲目（暂停菜单）
func (am *AudioManager) PauseMusic() {
	if am.current != nil {
		am.current.Pause()
	}
}

func (am *AudioManager) ResumeMusic() {
	if am.current == nil || !am.enabled(&am.music) {
		return
	}
	am.current.Play()
}

// SetMusicVolume 写入设置并立即应用到已创建的音乐播放器
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settings != nil {
		am.settings.SetMusicVolume(volume)
	}
	am.applyVolume(&am.music)
}

func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settings != nil {
		am.settings.SetSoundVolume(volume)
	}
	am.applyVolume(&am.sfx)
}

func (am *AudioManager) applyVolume(ch *audioChannel) {
	v := am.volumeOf(ch)
	for _, p := range ch.players {
		p.SetVolume(v)
	}
}

func (am *AudioManager) GetMusicVolume() float64 {
	return am.volumeOf(&am.music)
}

func (am *AudioManager) GetSoundVolume() float64 {
	return am.volumeOf(&am.sfx)
}

// PreloadSounds 提前合成音效，避免第一次开枪时卡顿
func (am *AudioManager) PreloadSounds(ids []string) {
	for _, id := range ids {
		am.player(&am.sfx, id)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(ids))
}
