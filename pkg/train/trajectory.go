// Package train 实现列车运动核心：轨迹缓冲区、车厢摆放和到站/出站目标状态机
//
// 轨迹缓冲区是无限轨道的滑动窗口：列车前进时按瓦片懒加载延伸，
// 驶离瓦片后按瓦片长度裁剪，内存始终只保留列车当前跨越的瓦片加上
// 首尾补白。多节车厢在同一窗口内按固定偏移采样各自的位置和朝向。
package train

import (
	"github.com/decker502/trackswitch/pkg/tilemap"
	"github.com/decker502/trackswitch/pkg/utils"
)

// Trajectory 轨迹缓冲区：有序世界坐标点序列 + 一对逻辑游标
//
// rightmost 指向列车的前导参考点（Forward 方向的车头）。
// 左游标由 rightmost 和列车长度推导，不单独存储，避免不变量漂移。
// 不变量：0 <= Leftmost() <= Rightmost() < Len()，越界意味着前方没有
// 可用轨道，移动必须回退而不破坏缓冲区内容。
type Trajectory struct {
	points    []utils.Vec2
	rightmost int
	// trainLength 列车总长（轨迹点数），用于推导左游标
	trainLength int
}

// NewTrajectory 以初始点序列构造轨迹缓冲区
// rightmost 为前导游标的初始位置
func NewTrajectory(points []utils.Vec2, rightmost, trainLength int) *Trajectory {
	return &Trajectory{points: points, rightmost: rightmost, trainLength: trainLength}
}

// Len 返回缓冲区内的点数
func (tr *Trajectory) Len() int {
	return len(tr.points)
}

// At 返回索引处的点。索引越界是契约违规，由切片访问直接 panic
func (tr *Trajectory) At(i int) utils.Vec2 {
	return tr.points[i]
}

// Rightmost 返回前导游标
func (tr *Trajectory) Rightmost() int {
	return tr.rightmost
}

// Leftmost 返回尾部游标（推导值，不存储）
func (tr *Trajectory) Leftmost() int {
	return tr.rightmost - tr.trainLength + 1
}

// Shift 尝试将游标移动 inc 个点
// 若移动后游标越界则原样回退并返回 false（前方无轨道，本帧不动）
func (tr *Trajectory) Shift(inc int) bool {
	tr.rightmost += inc
	if tr.rightmost >= len(tr.points) || tr.Leftmost() < 0 {
		tr.rightmost -= inc
		return false
	}
	return true
}

// ExtrapolateForward 沿当前路径切线外推下一个前向点
// 即 last + (last - secondToLast)，常速外推
func (tr *Trajectory) ExtrapolateForward() utils.Vec2 {
	n := len(tr.points)
	last := tr.points[n-1]
	return last.Add(last.Sub(tr.points[n-2]))
}

// ExtrapolateBackward 沿当前路径切线外推下一个后向点
func (tr *Trajectory) ExtrapolateBackward() utils.Vec2 {
	first := tr.points[0]
	return first.Add(first.Sub(tr.points[1]))
}

// Append 在前端（右端）追加点，游标不变
func (tr *Trajectory) Append(points []utils.Vec2) {
	tr.points = append(tr.points, points...)
}

// AppendStraightPadding 在右端补一瓦片长度的水平直线段
// 用于列车驶出可用地图范围（边缘补白）
func (tr *Trajectory) AppendStraightPadding() {
	last := tr.points[len(tr.points)-1]
	for i := 1; i <= tilemap.TileLength; i++ {
		tr.points = append(tr.points, utils.Vec2{X: last.X + float64(i), Y: last.Y})
	}
}

// Prepend 在后端（左端）插入点，并同步右移游标，
// 使游标继续指向同一个逻辑点
func (tr *Trajectory) Prepend(points []utils.Vec2) {
	tr.points = append(points, tr.points...)
	tr.rightmost += len(points)
}

// PrependStraightPadding 在左端补一瓦片长度的水平直线段
func (tr *Trajectory) PrependStraightPadding() {
	first := tr.points[0]
	pad := make([]utils.Vec2, tilemap.TileLength)
	for i := range pad {
		pad[i] = utils.Vec2{X: first.X - float64(tilemap.TileLength-i), Y: first.Y}
	}
	tr.Prepend(pad)
}

// TrimFront 从左端裁掉一瓦片长度的点，并左移游标保持逻辑位置不变
func (tr *Trajectory) TrimFront() {
	tr.points = tr.points[tilemap.TileLength:]
	tr.rightmost -= tilemap.TileLength
}

// TrimBack 从右端裁掉一瓦片长度的点，游标不变
func (tr *Trajectory) TrimBack() {
	tr.points = tr.points[:len(tr.points)-tilemap.TileLength]
}
