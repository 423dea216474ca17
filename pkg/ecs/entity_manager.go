package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
// 0 保留为无效ID，可用作"无实体"
type EntityID uint64

// InvalidEntity 无效实体ID
const InvalidEntity EntityID = 0

// EntityManager 管理所有实体和组件
//
// 组件按类型分桶存放（类型 -> 实体 -> 组件），查询时从最小的桶开始筛选。
// 删除是延迟的：DestroyEntity 只做标记，帧末 RemoveMarkedEntities 统一清理，
// 这样系统在遍历过程中销毁实体不会影响本帧其余逻辑。
type EntityManager struct {
	nextID  EntityID
	alive   map[EntityID]struct{}
	stores  map[reflect.Type]map[EntityID]any
	marked  map[EntityID]struct{}
	pending []EntityID
}

func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		stores: make(map[reflect.Type]map[EntityID]any),
		marked: make(map[EntityID]struct{}),
	}
}

// CreateEntity 分配新的实体ID（从 1 开始递增，不复用）
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.alive[id] = struct{}{}
	return id
}

// Exists 实体是否存在；已标记但尚未清理的实体仍视为存在
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.alive[id]
	return ok
}

// IsPendingDestroy 实体是否已被标记删除
func (em *EntityManager) IsPendingDestroy(id EntityID) bool {
	_, ok := em.marked[id]
	return ok
}

// DestroyEntity 标记实体待删除，重复标记只记录一次
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.Exists(id) || em.IsPendingDestroy(id) {
		return
	}
	em.marked[id] = struct{}{}
	em.pending = append(em.pending, id)
}

// AddComponent 为实体添加组件，同类型组件会被替换；实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	em.addTyped(id, reflect.TypeOf(component), component)
}

func (em *EntityManager) addTyped(id EntityID, t reflect.Type, component any) {
	if !em.Exists(id) {
		return
	}
	store, ok := em.stores[t]
	if !ok {
		store = make(map[EntityID]any)
		em.stores[t] = store
	}
	store[id] = component
}

func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	delete(em.stores[componentType], id)
}

func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	c, ok := em.stores[componentType][id]
	return c, ok
}

func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.stores[componentType][id]
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体及其组件，返回清理数量
func (em *EntityManager) RemoveMarkedEntities() int {
	n := len(em.pending)
	for _, id := range em.pending {
		for _, store := range em.stores {
			delete(store, id)
		}
		delete(em.alive, id)
		delete(em.marked, id)
	}
	em.pending = em.pending[:0]
	return n
}

// EntityCount 存活（含待删除）的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.alive)
}

// GetEntitiesWith 查询同时拥有全部组件类型的实体，结果按ID升序
// 固定顺序让同一种子下的模拟可以复现
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	if len(componentTypes) == 0 {
		return []EntityID{}
	}

	smallest := em.stores[componentTypes[0]]
	for _, t := range componentTypes[1:] {
		if len(em.stores[t]) < len(smallest) {
			smallest = em.stores[t]
		}
	}

	result := make([]EntityID, 0, len(smallest))
	for id := range smallest {
		if em.hasAll(id, componentTypes) {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func (em *EntityManager) hasAll(id EntityID, types []reflect.Type) bool {
	for _, t := range types {
		if _, ok := em.stores[t][id]; !ok {
			return false
		}
	}
	return true
}
