package tilemap

import (
	"testing"

	"github.com/decker502/trackswitch/pkg/types"
	"github.com/decker502/trackswitch/pkg/utils"
)

// buildTestMap 构造 3x4 测试地图：
//
//	第 1 行是一条横贯的直线轨道，两端是传送门 1 和 2，
//	中间两块瓦片组成站台 A。
func buildTestMap(t *testing.T) *LevelMap {
	t.Helper()

	m, err := NewLevelMap(3, 4)
	if err != nil {
		t.Fatalf("NewLevelMap failed: %v", err)
	}

	for col := 0; col < 4; col++ {
		tile, err := NewTrackTile(1, col, "mm", "")
		if err != nil {
			t.Fatalf("NewTrackTile failed: %v", err)
		}
		switch col {
		case 0:
			tile.Portal = types.PortalID("1")
		case 3:
			tile.Portal = types.PortalID("2")
		default:
			tile.Platform = types.PlatformID("A")
		}
		if err := m.AddTile(tile); err != nil {
			t.Fatalf("AddTile failed: %v", err)
		}
	}
	return m
}

// TestLevelMap_TileAt 测试世界坐标的瓦片查找
func TestLevelMap_TileAt(t *testing.T) {
	m := buildTestMap(t)

	tile := m.TileAt(utils.Vec2{X: 40, Y: 40})
	if tile == nil {
		t.Fatal("expected tile at (40, 40)")
	}
	if tile.Row != 1 || tile.Col != 1 {
		t.Errorf("TileAt(40,40) = (%d,%d), want (1,1)", tile.Row, tile.Col)
	}

	// 空格子
	if m.TileAt(utils.Vec2{X: 10, Y: 10}) != nil {
		t.Error("expected nil at empty cell (0,0)")
	}
	// 地图外
	if m.TileAt(utils.Vec2{X: -5, Y: 40}) != nil {
		t.Error("expected nil for negative coordinate")
	}
	if m.TileAt(utils.Vec2{X: 500, Y: 40}) != nil {
		t.Error("expected nil beyond map width")
	}
}

// TestLevelMap_Neighbour 测试八向邻居查询
func TestLevelMap_Neighbour(t *testing.T) {
	m := buildTestMap(t)
	center := m.TileAt(utils.Vec2{X: 40, Y: 40}) // (1,1)

	east := m.Neighbour(center, types.E)
	if east == nil || east.Col != 2 {
		t.Errorf("E neighbour = %v, want tile at col 2", east)
	}
	west := m.Neighbour(center, types.W)
	if west == nil || west.Col != 0 {
		t.Errorf("W neighbour = %v, want tile at col 0", west)
	}
	// 第 0 行没有瓦片
	if m.Neighbour(center, types.N) != nil {
		t.Error("N neighbour should be nil")
	}

	// 左边缘传送门的西侧在地图外
	portal, _ := m.Portal(types.PortalID("1"))
	if m.Neighbour(portal, types.W) != nil {
		t.Error("W of left-edge portal should be nil")
	}
	if m.Neighbour(portal, types.NW) != nil || m.Neighbour(portal, types.SW) != nil {
		t.Error("NW/SW of left-edge portal should be nil")
	}
}

// TestLevelMap_PlatformRect 测试站台矩形并集
func TestLevelMap_PlatformRect(t *testing.T) {
	m := buildTestMap(t)

	rect, ok := m.PlatformRect(types.PlatformID("A"))
	if !ok {
		t.Fatal("platform A should exist")
	}
	// 站台覆盖 (1,1) 和 (1,2) 两块瓦片
	want := utils.Rect{X: 32, Y: 32, W: 64, H: 32}
	if rect != want {
		t.Errorf("PlatformRect = %v, want %v", rect, want)
	}

	if _, ok := m.PlatformRect(types.PlatformID("Z")); ok {
		t.Error("unknown platform should return false")
	}
}

// TestLevelMap_Portals 测试传送门登记
func TestLevelMap_Portals(t *testing.T) {
	m := buildTestMap(t)

	if len(m.Portals()) != 2 {
		t.Errorf("expected 2 portals, got %d", len(m.Portals()))
	}
	tile, ok := m.Portal(types.PortalID("2"))
	if !ok {
		t.Fatal("portal 2 should exist")
	}
	if tile.Col != 3 {
		t.Errorf("portal 2 at col %d, want 3", tile.Col)
	}
}

// TestLevelMap_AddTile_Errors 测试瓦片登记的错误分支
func TestLevelMap_AddTile_Errors(t *testing.T) {
	m, _ := NewLevelMap(2, 2)

	tile, _ := NewTrackTile(0, 0, "mm", "")
	if err := m.AddTile(tile); err != nil {
		t.Fatalf("AddTile failed: %v", err)
	}

	// 重复占格
	dup, _ := NewTrackTile(0, 0, "mm", "")
	if err := m.AddTile(dup); err == nil {
		t.Error("duplicate tile position should return error")
	}

	// 越界
	out, _ := NewTrackTile(5, 5, "mm", "")
	if err := m.AddTile(out); err == nil {
		t.Error("out-of-bounds tile should return error")
	}

	// 重复传送门标识
	p1, _ := NewTrackTile(0, 1, "mm", "")
	p1.Portal = types.PortalID("1")
	if err := m.AddTile(p1); err != nil {
		t.Fatalf("AddTile failed: %v", err)
	}
	p2, _ := NewTrackTile(1, 1, "mm", "")
	p2.Portal = types.PortalID("1")
	if err := m.AddTile(p2); err == nil {
		t.Error("duplicate portal id should return error")
	}
}

// TestLevelMap_ToggleSwitchAt 测试点击切换道岔
func TestLevelMap_ToggleSwitchAt(t *testing.T) {
	m, _ := NewLevelMap(1, 2)
	plain, _ := NewTrackTile(0, 0, "mm", "")
	switched, _ := NewTrackTile(0, 1, "mm", "md")
	m.AddTile(plain)
	m.AddTile(switched)

	if m.ToggleSwitchAt(utils.Vec2{X: 10, Y: 10}) {
		t.Error("toggling a plain tile should report false")
	}
	if !m.ToggleSwitchAt(utils.Vec2{X: 40, Y: 10}) {
		t.Error("toggling a switch tile should report true")
	}
	if switched.ActivePath() != "md" {
		t.Errorf("active path = %q, want \"md\"", switched.ActivePath())
	}
}
