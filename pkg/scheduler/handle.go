package scheduler

// Handle 定时任务句柄，零值为无效句柄
type Handle struct {
	s  *Scheduler
	id TaskID
}

// ID 返回任务ID
func (h Handle) ID() TaskID {
	return h.id
}

// Active 任务是否仍在等待触发
func (h Handle) Active() bool {
	if h.s == nil {
		return false
	}
	_, ok := h.s.tasks[h.id]
	return ok
}

// Remaining 距离触发的剩余时间（秒），无效或已结束的任务返回 0
func (h Handle) Remaining() float64 {
	if h.s == nil {
		return 0
	}
	t, ok := h.s.tasks[h.id]
	if !ok {
		return 0
	}
	if r := t.deadline - h.s.now; r > 0 {
		return r
	}
	return 0
}

// Cancel 取消任务，返回是否真正取消了一个等待中的任务
func (h Handle) Cancel() bool {
	if h.s == nil {
		return false
	}
	t, ok := h.s.tasks[h.id]
	if !ok {
		return false
	}
	h.s.cancel(t)
	return true
}
