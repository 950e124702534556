// Package utils 提供游戏开发中常用的工具函数
//
// geometry.go 提供二维向量和矩形运算。
// 轨迹点、轴点采样、站台包含判定和传送门相交判定都建立在这些类型之上。
// 坐标系为世界坐标：原点在地图左上角，x 向右，y 向下。
package utils

import "math"

// Vec2 二维向量（世界坐标，像素单位）
type Vec2 struct {
	X float64
	Y float64
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale 向量数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Angle 返回向量与 x 轴正方向的夹角（弧度）
// y 轴向下，因此顺时针为正
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AlmostEqual 判断两个向量是否在容差范围内相等
// 轨迹点是整数像素坐标经过浮点插值得到的，比较时需要容差
func (v Vec2) AlmostEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Midpoint 返回两点的中点
func Midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Rect 轴对齐矩形（左上角坐标 + 宽高）
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// RectFromCenter 以中心点和宽高构造矩形
func RectFromCenter(center Vec2, w, h float64) Rect {
	return Rect{center.X - w/2, center.Y - h/2, w, h}
}

// Center 返回矩形中心点
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Right 返回矩形右边界 x 坐标
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom 返回矩形下边界 y 坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Union 返回能同时覆盖两个矩形的最小矩形
func (r Rect) Union(o Rect) Rect {
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	right := math.Max(r.Right(), o.Right())
	bottom := math.Max(r.Bottom(), o.Bottom())
	return Rect{x, y, right - x, bottom - y}
}

// Contains 判断矩形 o 是否完全落在 r 内（边界重合视为包含）
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// ContainsPoint 判断点是否落在矩形内（含左上边界，不含右下边界）
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects 判断两个矩形是否相交
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}
