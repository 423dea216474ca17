package config

import "github.com/decker502/deadshelf/pkg/utils"

// 窗口与画面布局常量
// 画面左侧是俯视地图，右侧是 HUD 面板
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 960
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 640

	// HUDPanelWidth 右侧 HUD 面板宽度
	HUDPanelWidth = 260
	// HUDMargin HUD 文字边距
	HUDMargin = 16
	// HUDLineHeight HUD 文字行高
	HUDLineHeight = 18

	// MapMargin 地图四周留白
	MapMargin = 16
	// MaxPixelsPerMeter 小关卡的最大缩放
	MaxPixelsPerMeter = 24.0

	// ObjectiveArrowLength 副目标箭头长度（像素）
	ObjectiveArrowLength = 28.0
	// FacingLineLength 玩家朝向指示线长度（米）
	FacingLineLength = 1.5
)

// MapLayout 把关卡的 XZ 平面映射到屏幕矩形
// 屏幕 X 对应世界 X，屏幕 Y 向下对应世界 -Z（+Z 朝上）
type MapLayout struct {
	Scale   float64 // 像素/米
	OriginX float64 // 世界 (Min.X, Max.Z) 所在的屏幕坐标
	OriginY float64
	Min     utils.Vec3
	Max     utils.Vec3
}

// NewMapLayout 计算在 width x height 区域内居中显示 bounds 的映射
func NewMapLayout(bounds Bounds, width, height float64) MapLayout {
	worldW := bounds.Max.X - bounds.Min.X
	worldD := bounds.Max.Z - bounds.Min.Z
	availW := width - 2*MapMargin
	availH := height - 2*MapMargin

	scale := MaxPixelsPerMeter
	if worldW > 0 && availW/worldW < scale {
		scale = availW / worldW
	}
	if worldD > 0 && availH/worldD < scale {
		scale = availH / worldD
	}

	return MapLayout{
		Scale:   scale,
		OriginX: MapMargin + (availW-worldW*scale)/2,
		OriginY: MapMargin + (availH-worldD*scale)/2,
		Min:     bounds.Min,
		Max:     bounds.Max,
	}
}

// ToScreen 世界坐标转屏幕坐标（忽略高度）
func (m MapLayout) ToScreen(p utils.Vec3) (float64, float64) {
	return m.OriginX + (p.X-m.Min.X)*m.Scale, m.OriginY + (m.Max.Z-p.Z)*m.Scale
}

// Length 世界长度转像素
func (m MapLayout) Length(meters float64) float64 {
	return meters * m.Scale
}
