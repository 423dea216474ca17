package game

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/decker502/deadshelf/pkg/types"
)

// 背景音乐资源ID
const (
	MusicLibraryAmbience = "MUSIC_LIBRARY_AMBIENCE"
	MusicCellarDrone     = "MUSIC_CELLAR_DRONE"
)

// BackgroundTracks 可随机播放的背景音乐
var BackgroundTracks = []string{MusicLibraryAmbience, MusicCellarDrone}

// pcmWriter 生成 16 位小端立体声 PCM（ebiten audio 的默认格式）
type pcmWriter struct {
	sampleRate int
	buf        []byte
}

func newPCMWriter(sampleRate int, seconds float64) *pcmWriter {
	n := int(float64(sampleRate) * seconds)
	return &pcmWriter{sampleRate: sampleRate, buf: make([]byte, 0, n*4)}
}

func (w *pcmWriter) samples(seconds float64) int {
	return int(float64(w.sampleRate) * seconds)
}

func (w *pcmWriter) write(v float64) {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	s := uint16(int16(v * math.MaxInt16))
	w.buf = binary.LittleEndian.AppendUint16(w.buf, s)
	w.buf = binary.LittleEndian.AppendUint16(w.buf, s)
}

// synthesizeCue 按音效ID合成 PCM，未知ID返回 nil
func synthesizeCue(id string, sampleRate int) []byte {
	switch id {
	case types.CueGunshot:
		return synthNoiseBurst(sampleRate, 0.18, 28, 0.9)
	case types.CueDryFire:
		return synthNoiseBurst(sampleRate, 0.03, 120, 0.4)
	case types.CueReload:
		return synthClicks(sampleRate, []float64{0, 0.25, 0.5}, 0.7)
	case types.CuePurchase:
		return synthTones(sampleRate, []float64{660, 880}, 0.12, 0.5)
	case types.CueBookShelved:
		return synthTones(sampleRate, []float64{523.25}, 0.2, 0.4)
	}
	return nil
}

// synthesizeMusic 合成可循环的背景音乐，未知ID返回 nil
func synthesizeMusic(id string, sampleRate int) []byte {
	switch id {
	case MusicLibraryAmbience:
		return synthDrone(sampleRate, 8, 55, 0.25)
	case MusicCellarDrone:
		return synthDrone(sampleRate, 8, 41.2, 0.3)
	}
	return nil
}

// synthNoiseBurst 指数衰减的白噪声（枪声、空仓）
func synthNoiseBurst(sampleRate int, seconds, decay, gain float64) []byte {
	w := newPCMWriter(sampleRate, seconds)
	rng := rand.New(rand.NewSource(1))
	n := w.samples(seconds)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		w.write((rng.Float64()*2 - 1) * gain * math.Exp(-decay*t))
	}
	return w.buf
}

// synthClicks 若干个短促的金属声（换弹）
func synthClicks(sampleRate int, at []float64, gain float64) []byte {
	total := at[len(at)-1] + 0.05
	w := newPCMWriter(sampleRate, total)
	n := w.samples(total)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := 0.0
		for _, start := range at {
			if dt := t - start; dt >= 0 && dt < 0.05 {
				v += math.Sin(2*math.Pi*2400*dt) * math.Exp(-90*dt)
			}
		}
		w.write(v * gain)
	}
	return w.buf
}

// synthTones 依次播放的正弦音（购买、放书）
func synthTones(sampleRate int, freqs []float64, each, gain float64) []byte {
	total := each * float64(len(freqs))
	w := newPCMWriter(sampleRate, total)
	n := w.samples(total)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		idx := int(t / each)
		if idx >= len(freqs) {
			idx = len(freqs) - 1
		}
		local := t - float64(idx)*each
		env := math.Min(1, local*200) * math.Exp(-6*local)
		w.write(math.Sin(2*math.Pi*freqs[idx]*t) * env * gain)
	}
	return w.buf
}

// synthDrone 低频持续音，首尾相位一致便于循环
func synthDrone(sampleRate int, seconds, base, gain float64) []byte {
	w := newPCMWriter(sampleRate, seconds)
	n := w.samples(seconds)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*t/seconds)
		v := math.Sin(2*math.Pi*base*t) + 0.5*math.Sin(2*math.Pi*base*1.5*t)
		w.write(v / 1.5 * swell * gain)
	}
	return w.buf
}
