package systems

import (
	"math"

	"github.com/decker502/deadshelf/pkg/components"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/utils"
)

const rayEpsilon = 1e-9

// RayHit 射线命中结果
type RayHit struct {
	Entity   ecs.EntityID
	Kind     components.ColliderKind
	Point    utils.Vec3 // 命中点
	Normal   utils.Vec3 // 命中面法线
	Distance float64    // 起点到命中点的距离
}

// PhysicsSystem 射线查询
// 武器射击和交互检测共用，只检测启用中的碰撞体
type PhysicsSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// Raycast 沿 dir 方向检测 maxDistance 内最近的碰撞体
//
// 参数:
//   - origin: 射线起点
//   - dir: 方向（内部归一化，零向量视为未命中）
//   - maxDistance: 最大检测距离
//   - mask: 参与检测的碰撞类别
//
// 返回:
//   - RayHit: 最近的命中（距离相同时实体ID小者优先）
//   - bool: 是否命中
func (ps *PhysicsSystem) Raycast(origin, dir utils.Vec3, maxDistance float64, mask components.ColliderMask) (RayHit, bool) {
	d := dir.Normalize()
	if d == utils.Zero || maxDistance <= 0 {
		return RayHit{}, false
	}

	var best RayHit
	found := false

	entityList := ecs.GetEntitiesWith2[*components.TransformComponent, *components.CollisionComponent](ps.em)
	for _, id := range entityList {
		if ps.em.IsPendingDestroy(id) {
			continue
		}
		col, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, id)
		if !col.Enabled || !mask.Has(col.Kind) {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](ps.em, id)
		center := tr.Position.Add(col.Offset)

		var t float64
		var normal utils.Vec3
		var ok bool
		switch col.Shape {
		case components.ShapeSphere:
			t, normal, ok = intersectSphere(origin, d, center, col.Radius)
		case components.ShapeBox:
			t, normal, ok = intersectBox(origin, d, center, col.HalfExtents)
		}
		if !ok || t > maxDistance {
			continue
		}
		if !found || t < best.Distance {
			best = RayHit{
				Entity:   id,
				Kind:     col.Kind,
				Point:    origin.Add(d.Scale(t)),
				Normal:   normal,
				Distance: t,
			}
			found = true
		}
	}

	return best, found
}

// intersectSphere 射线与球求交，起点在球内时返回 t=0
func intersectSphere(origin, d, center utils.Vec3, radius float64) (float64, utils.Vec3, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(d)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, d.Scale(-1), true
	}
	disc := b*b - c
	if disc < 0 || b > 0 {
		return 0, utils.Vec3{}, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	point := origin.Add(d.Scale(t))
	return t, point.Sub(center).Normalize(), true
}

// intersectBox 射线与轴对齐盒子求交（slab 算法），起点在盒内时返回 t=0
func intersectBox(origin, d, center, half utils.Vec3) (float64, utils.Vec3, bool) {
	o := [3]float64{origin.X - center.X, origin.Y - center.Y, origin.Z - center.Z}
	dir := [3]float64{d.X, d.Y, d.Z}
	h := [3]float64{half.X, half.Y, half.Z}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	axis := -1
	sign := 0.0

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < rayEpsilon {
			if o[i] < -h[i] || o[i] > h[i] {
				return 0, utils.Vec3{}, false
			}
			continue
		}
		t1 := (-h[i] - o[i]) / dir[i]
		t2 := (h[i] - o[i]) / dir[i]
		s := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1.0
		}
		if t1 > tMin {
			tMin = t1
			axis = i
			sign = s
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax || tMax < 0 {
			return 0, utils.Vec3{}, false
		}
	}

	if tMin < 0 || axis < 0 {
		return 0, d.Scale(-1), true
	}

	var n [3]float64
	n[axis] = sign
	return tMin, utils.Vec3{X: n[0], Y: n[1], Z: n[2]}, true
}
