package components

import "github.com/decker502/deadshelf/pkg/utils"

// NavigationComponent 直线寻路代理
type NavigationComponent struct {
	Destination      utils.Vec3
	HasDestination   bool
	Stopped          bool    // 暂停移动（可恢复）
	Enabled          bool    // 禁用后不再接受目标（死亡后）
	Speed            float64 // 米/秒
	StoppingDistance float64 // 距目标小于该值时停下
}
