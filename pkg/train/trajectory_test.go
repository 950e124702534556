package train

import (
	"testing"

	"github.com/decker502/trackswitch/pkg/tilemap"
	"github.com/decker502/trackswitch/pkg/utils"
)

// straightPoints 生成一段水平直线轨迹，x 从 x0 开始逐像素递增
func straightPoints(x0 float64, n int) []utils.Vec2 {
	points := make([]utils.Vec2, n)
	for i := range points {
		points[i] = utils.Vec2{X: x0 + float64(i), Y: 15}
	}
	return points
}

// TestTrajectory_Shift 测试游标移动和越界回退
func TestTrajectory_Shift(t *testing.T) {
	tr := NewTrajectory(straightPoints(0, 100), 50, 30)

	if !tr.Shift(5) {
		t.Fatal("shift within bounds should succeed")
	}
	if tr.Rightmost() != 55 {
		t.Errorf("Rightmost = %d, want 55", tr.Rightmost())
	}
	if tr.Leftmost() != 26 {
		t.Errorf("Leftmost = %d, want 26", tr.Leftmost())
	}

	// 右越界：回退游标
	if tr.Shift(100) {
		t.Error("shift beyond right edge should fail")
	}
	if tr.Rightmost() != 55 {
		t.Errorf("failed shift must not move cursor, Rightmost = %d", tr.Rightmost())
	}

	// 左越界：Leftmost 变负
	if tr.Shift(-30) {
		t.Error("shift making leftmost negative should fail")
	}
	if tr.Rightmost() != 55 {
		t.Errorf("failed shift must not move cursor, Rightmost = %d", tr.Rightmost())
	}
}

// TestTrajectory_Extrapolate 测试沿切线的常速外推
func TestTrajectory_Extrapolate(t *testing.T) {
	tr := NewTrajectory(straightPoints(10, 20), 19, 5)

	forward := tr.ExtrapolateForward()
	if forward != (utils.Vec2{X: 30, Y: 15}) {
		t.Errorf("ExtrapolateForward = %v, want {30 15}", forward)
	}

	backward := tr.ExtrapolateBackward()
	if backward != (utils.Vec2{X: 9, Y: 15}) {
		t.Errorf("ExtrapolateBackward = %v, want {9 15}", backward)
	}
}

// TestTrajectory_PrependAdjustsCursor 测试左端插入时游标保持指向同一逻辑点
func TestTrajectory_PrependAdjustsCursor(t *testing.T) {
	tr := NewTrajectory(straightPoints(0, 64), 40, 30)
	logical := tr.At(tr.Rightmost())

	tr.Prepend(straightPoints(-32, 32))

	if tr.Len() != 96 {
		t.Errorf("Len = %d, want 96", tr.Len())
	}
	if tr.At(tr.Rightmost()) != logical {
		t.Errorf("cursor no longer references the same point: %v != %v",
			tr.At(tr.Rightmost()), logical)
	}
	if tr.At(0) != (utils.Vec2{X: -32, Y: 15}) {
		t.Errorf("first point = %v, want {-32 15}", tr.At(0))
	}
}

// TestTrajectory_TrimFrontPreservesLogicalPosition 测试左端裁剪保持逻辑位置
func TestTrajectory_TrimFrontPreservesLogicalPosition(t *testing.T) {
	tr := NewTrajectory(straightPoints(0, 96), 80, 30)
	logical := tr.At(tr.Rightmost())

	tr.TrimFront()

	if tr.Len() != 96-tilemap.TileLength {
		t.Errorf("Len = %d, want %d", tr.Len(), 96-tilemap.TileLength)
	}
	if tr.Rightmost() != 80-tilemap.TileLength {
		t.Errorf("Rightmost = %d, want %d", tr.Rightmost(), 80-tilemap.TileLength)
	}
	if tr.At(tr.Rightmost()) != logical {
		t.Errorf("trim moved the logical position: %v != %v", tr.At(tr.Rightmost()), logical)
	}
}

// TestTrajectory_TrimBack 测试右端裁剪
func TestTrajectory_TrimBack(t *testing.T) {
	tr := NewTrajectory(straightPoints(0, 96), 40, 30)
	logical := tr.At(tr.Rightmost())

	tr.TrimBack()

	if tr.Len() != 64 {
		t.Errorf("Len = %d, want 64", tr.Len())
	}
	if tr.At(tr.Rightmost()) != logical {
		t.Errorf("trim moved the logical position: %v != %v", tr.At(tr.Rightmost()), logical)
	}
}

// TestTrajectory_StraightPadding 测试边缘补白的连续性
func TestTrajectory_StraightPadding(t *testing.T) {
	tr := NewTrajectory(straightPoints(0, 32), 31, 10)

	tr.AppendStraightPadding()
	if tr.Len() != 64 {
		t.Fatalf("Len = %d, want 64", tr.Len())
	}
	// 补白与原末点逐像素连续
	if tr.At(32) != (utils.Vec2{X: 32, Y: 15}) {
		t.Errorf("first padded point = %v, want {32 15}", tr.At(32))
	}
	if tr.At(63) != (utils.Vec2{X: 63, Y: 15}) {
		t.Errorf("last padded point = %v, want {63 15}", tr.At(63))
	}

	tr.PrependStraightPadding()
	if tr.Len() != 96 {
		t.Fatalf("Len = %d, want 96", tr.Len())
	}
	if tr.At(0) != (utils.Vec2{X: -32, Y: 15}) {
		t.Errorf("first prepended point = %v, want {-32 15}", tr.At(0))
	}
	if tr.At(31) != (utils.Vec2{X: -1, Y: 15}) {
		t.Errorf("last prepended point = %v, want {-1 15}", tr.At(31))
	}
}
