package components

import "github.com/decker502/deadshelf/pkg/ecs"

// BookshelfComponent 书架
type BookshelfComponent struct {
	Index int // 书架编号（从 1 开始，HUD 显示用）
}

// ObjectiveComponent 整理书籍副目标状态（挂在玩家实体上）
type ObjectiveComponent struct {
	BookQueue    []ecs.EntityID // 手中每本书对应的目标书架，队首为当前目标
	BooksShelved int            // 已放对的书本数
	LookTarget   ecs.EntityID   // 交互射线当前指向的物体（0 表示无）
	Prompt       string         // 交互提示文本（空表示隐藏）
}

// BooksCarried 手中书本数量
func (o *ObjectiveComponent) BooksCarried() int {
	return len(o.BookQueue)
}

// NextShelf 当前需要高亮的目标书架
func (o *ObjectiveComponent) NextShelf() (ecs.EntityID, bool) {
	if len(o.BookQueue) == 0 {
		return ecs.InvalidEntity, false
	}
	return o.BookQueue[0], true
}
