package components

// LifetimeComponent 限时存在的实体（命中特效），Age 达到 Duration 后被回收
type LifetimeComponent struct {
	Duration float64
	Age      float64
}

// Progress 已经过的比例，范围 [0,1]
func (l *LifetimeComponent) Progress() float64 {
	if l.Duration <= 0 {
		return 1
	}
	p := l.Age / l.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Expired 是否到期
func (l *LifetimeComponent) Expired() bool {
	return l.Age >= l.Duration
}
