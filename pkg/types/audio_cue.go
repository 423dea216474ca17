package types

// 音效 ID，由核心系统发出，音频管理器负责播放
const (
	CueGunshot     = "SOUND_GUNSHOT"
	CueDryFire     = "SOUND_DRYFIRE"
	CueReload      = "SOUND_RELOAD"
	CuePurchase    = "SOUND_PURCHASE"
	CueBookShelved = "SOUND_BOOK"
)

// AudioPlayer 音频协作者：即发即弃，不关心返回值
type AudioPlayer interface {
	PlayCue(id string)
}

// NopAudio 静音实现（无头运行与测试使用）
type NopAudio struct{}

// PlayCue 什么也不做
func (NopAudio) PlayCue(string) {}

// AllCues 所有音效（预加载用）
var AllCues = []string{CueGunshot, CueDryFire, CueReload, CuePurchase, CueBookShelved}
