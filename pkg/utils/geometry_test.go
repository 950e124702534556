package utils

import (
	"math"
	"testing"
)

// TestVec2_Arithmetic 测试向量基本运算
func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v, want {2 6}", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %v, want {6 8}", got)
	}
	if got := Midpoint(a, b); got != (Vec2{2, 1}) {
		t.Errorf("Midpoint = %v, want {2 1}", got)
	}
}

// TestVec2_Angle 测试向量角度计算
func TestVec2_Angle(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{Vec2{1, 0}, 0},
		{Vec2{0, 1}, math.Pi / 2},
		{Vec2{-1, 0}, math.Pi},
		{Vec2{1, 1}, math.Pi / 4},
	}

	for _, tt := range tests {
		if got := tt.v.Angle(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v.Angle() = %f, want %f", tt.v, got, tt.want)
		}
	}
}

// TestVec2_AlmostEqual 测试容差比较
func TestVec2_AlmostEqual(t *testing.T) {
	a := Vec2{1.0, 2.0}
	if !a.AlmostEqual(Vec2{1.0001, 1.9999}, 0.001) {
		t.Error("points within eps should be equal")
	}
	if a.AlmostEqual(Vec2{1.1, 2.0}, 0.001) {
		t.Error("points outside eps should not be equal")
	}
}

// TestRect_Union 测试矩形并集
func TestRect_Union(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 10, 10}

	got := a.Union(b)
	want := Rect{0, 0, 15, 15}
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}

	// 并集中的任何一方应当被结果包含
	if !got.Contains(a) || !got.Contains(b) {
		t.Error("union should contain both inputs")
	}
}

// TestRect_Contains 测试矩形包含判定（站台停靠依赖的语义）
func TestRect_Contains(t *testing.T) {
	outer := Rect{0, 0, 100, 32}

	if !outer.Contains(Rect{10, 5, 50, 20}) {
		t.Error("inner rect should be contained")
	}
	// 边界重合视为包含
	if !outer.Contains(Rect{0, 0, 100, 32}) {
		t.Error("identical rect should be contained")
	}
	// 超出一条边就不算包含
	if outer.Contains(Rect{60, 5, 50, 20}) {
		t.Error("rect sticking out right should not be contained")
	}
}

// TestRect_Intersects 测试矩形相交判定（传送门检查依赖的语义）
func TestRect_Intersects(t *testing.T) {
	a := Rect{0, 0, 32, 32}

	if !a.Intersects(Rect{16, 16, 32, 32}) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(Rect{32, 0, 32, 32}) {
		t.Error("edge-touching rects should not intersect")
	}
	if a.Intersects(Rect{100, 100, 5, 5}) {
		t.Error("distant rects should not intersect")
	}
}

// TestRect_ContainsPoint 测试点包含判定
func TestRect_ContainsPoint(t *testing.T) {
	r := Rect{10, 10, 20, 20}

	if !r.ContainsPoint(Vec2{10, 10}) {
		t.Error("top-left corner should be inside")
	}
	if r.ContainsPoint(Vec2{30, 30}) {
		t.Error("bottom-right corner should be outside")
	}
	if !r.ContainsPoint(Vec2{20, 25}) {
		t.Error("interior point should be inside")
	}
}
