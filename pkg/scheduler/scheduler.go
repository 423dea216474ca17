// Package scheduler 提供基于帧时钟的协作式定时器
//
// 所有"等待"（攻击前摇、换弹倒计时、死亡缓冲、刷怪间隔）都登记为
// (截止时间, 可取消回调) 条目，由 Advance() 每帧推进一次。
// 回调在调用 Advance 的同一 goroutine 中同步执行，不存在并发修改。
package scheduler

import (
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/emirpasic/gods/trees/binaryheap"
	godsutils "github.com/emirpasic/gods/utils"
)

// TaskID 定时任务ID（0 为无效ID）
type TaskID uint64

type task struct {
	id        TaskID
	owner     ecs.EntityID
	deadline  float64
	seq       uint64 // 同一截止时间按登记顺序触发
	interval  float64
	fn        func()
	cancelled bool
}

// byDeadline 堆排序规则：截止时间升序，相同时按登记顺序
func byDeadline(a, b interface{}) int {
	ta := a.(*task)
	tb := b.(*task)
	switch {
	case ta.deadline < tb.deadline:
		return -1
	case ta.deadline > tb.deadline:
		return 1
	case ta.seq < tb.seq:
		return -1
	case ta.seq > tb.seq:
		return 1
	}
	return 0
}

var _ godsutils.Comparator = byDeadline

// Scheduler 帧时钟调度器
type Scheduler struct {
	now     float64
	queue   *binaryheap.Heap
	tasks   map[TaskID]*task
	byOwner map[ecs.EntityID]map[TaskID]struct{}
	nextID  TaskID
	nextSeq uint64
}

// New 创建调度器，时钟从 0 开始
func New() *Scheduler {
	return &Scheduler{
		queue:   binaryheap.NewWith(byDeadline),
		tasks:   make(map[TaskID]*task),
		byOwner: make(map[ecs.EntityID]map[TaskID]struct{}),
	}
}

// Now 当前帧时钟（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending 尚未触发且未取消的任务数
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// PendingFor 指定所有者尚未触发的任务数
func (s *Scheduler) PendingFor(owner ecs.EntityID) int {
	return len(s.byOwner[owner])
}

// After 在 delay 秒后执行 fn（不归属任何实体）
func (s *Scheduler) After(delay float64, fn func()) Handle {
	return s.AfterFor(ecs.InvalidEntity, delay, fn)
}

// AfterFor 在 delay 秒后执行 fn，任务归属 owner
// owner 被销毁时调用 CancelOwner 即可一次性取消其全部任务
func (s *Scheduler) AfterFor(owner ecs.EntityID, delay float64, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return s.schedule(owner, s.now+delay, 0, fn)
}

// Every 每隔 interval 秒重复执行 fn，首次在 interval 秒后
// interval 必须为正，否则返回无效句柄
func (s *Scheduler) Every(owner ecs.EntityID, interval float64, fn func()) Handle {
	if interval <= 0 {
		return Handle{}
	}
	return s.schedule(owner, s.now+interval, interval, fn)
}

func (s *Scheduler) schedule(owner ecs.EntityID, deadline, interval float64, fn func()) Handle {
	s.nextID++
	t := &task{
		id:       s.nextID,
		owner:    owner,
		deadline: deadline,
		seq:      s.nextSeq,
		interval: interval,
		fn:       fn,
	}
	s.nextSeq++
	s.tasks[t.id] = t
	if owner != ecs.InvalidEntity {
		set, ok := s.byOwner[owner]
		if !ok {
			set = make(map[TaskID]struct{})
			s.byOwner[owner] = set
		}
		set[t.id] = struct{}{}
	}
	s.queue.Push(t)
	return Handle{s: s, id: t.id}
}

// CancelOwner 取消 owner 名下的全部任务，返回取消数量
func (s *Scheduler) CancelOwner(owner ecs.EntityID) int {
	set := s.byOwner[owner]
	n := 0
	for id := range set {
		if t, ok := s.tasks[id]; ok {
			s.cancel(t)
			n++
		}
	}
	delete(s.byOwner, owner)
	return n
}

// Clear 取消所有任务（时钟不回退）
func (s *Scheduler) Clear() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = make(map[TaskID]*task)
	s.byOwner = make(map[ecs.EntityID]map[TaskID]struct{})
	s.queue.Clear()
}

// cancel 标记任务取消并从索引中移除；堆中的条目在出堆时丢弃
func (s *Scheduler) cancel(t *task) {
	t.cancelled = true
	s.unindex(t)
}

func (s *Scheduler) unindex(t *task) {
	delete(s.tasks, t.id)
	if set, ok := s.byOwner[t.owner]; ok {
		delete(set, t.id)
		if len(set) == 0 {
			delete(s.byOwner, t.owner)
		}
	}
}

// Advance 推进时钟 dt 秒并按截止时间顺序触发到期任务，返回触发数量
//
// 触发每个任务前时钟先移动到该任务的截止时间，
// 因此回调中以正延迟登记的新任务若仍落在本次窗口内，也会在本次 Advance 中触发。
func (s *Scheduler) Advance(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for {
		v, ok := s.queue.Peek()
		if !ok {
			break
		}
		t := v.(*task)
		if t.cancelled {
			s.queue.Pop()
			continue
		}
		if t.deadline > target {
			break
		}
		s.queue.Pop()

		if t.deadline > s.now {
			s.now = t.deadline
		}

		if t.interval > 0 {
			// 先重新入堆，回调内 Cancel 自身句柄时能正确生效
			t.deadline += t.interval
			t.seq = s.nextSeq
			s.nextSeq++
			s.queue.Push(t)
		} else {
			s.unindex(t)
		}

		t.fn()
		fired++
	}

	s.now = target
	return fired
}
