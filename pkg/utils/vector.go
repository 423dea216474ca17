package utils

import "math"

// Vec3 三维向量（世界坐标，Y 轴向上）
type Vec3 struct {
	X, Y, Z float64
}

// Zero 零向量
var Zero = Vec3{}

// Forward 默认朝向（+Z）
var Forward = Vec3{Z: 1}

// Add 向量相加
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量相减
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 数乘
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot 点积
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length 向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize 返回单位向量
// 长度过小（接近零向量）时返回零向量，与常见引擎的行为一致
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-9 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Distance 两点距离
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Flat 投影到水平面（Y=0）
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// YawToForward 将偏航角（弧度，0 指向 +Z，顺时针为正）转换为水平朝向
func YawToForward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// ForwardToYaw 水平朝向转换为偏航角
func ForwardToYaw(forward Vec3) float64 {
	return math.Atan2(forward.X, forward.Z)
}

// MoveTowards 从 current 向 target 移动不超过 maxDelta 的距离
func MoveTowards(current, target Vec3, maxDelta float64) Vec3 {
	diff := target.Sub(current)
	dist := diff.Length()
	if dist <= maxDelta || dist < 1e-9 {
		return target
	}
	return current.Add(diff.Scale(maxDelta / dist))
}

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
