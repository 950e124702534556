package tilemap

import (
	"fmt"

	"github.com/decker502/trackswitch/pkg/types"
	"github.com/decker502/trackswitch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// LevelMap 关卡地图：按行列组织的轨道瓦片网格
//
// 地图对列车只读：列车通过 TileAt / Neighbour / Platforms / Portals
// 查询轨道信息，道岔切换由场景（玩家输入）驱动。
type LevelMap struct {
	rows int
	cols int
	// tiles 按 [row][col] 索引，空位为 nil（没有轨道的格子）
	tiles [][]*TrackTile

	// platforms 站台标识到瓦片组的映射，一个站台可跨多块瓦片
	platforms map[types.PlatformID][]*TrackTile
	// portals 传送门标识到单块瓦片的映射
	portals map[types.PortalID]*TrackTile
}

// NewLevelMap 构造空的关卡地图
func NewLevelMap(rows, cols int) (*LevelMap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", rows, cols)
	}
	tiles := make([][]*TrackTile, rows)
	for r := range tiles {
		tiles[r] = make([]*TrackTile, cols)
	}
	return &LevelMap{
		rows:      rows,
		cols:      cols,
		tiles:     tiles,
		platforms: make(map[types.PlatformID][]*TrackTile),
		portals:   make(map[types.PortalID]*TrackTile),
	}, nil
}

// AddTile 将瓦片放入网格并登记其传送门/站台角色
func (m *LevelMap) AddTile(tile *TrackTile) error {
	if tile.Row < 0 || tile.Row >= m.rows || tile.Col < 0 || tile.Col >= m.cols {
		return fmt.Errorf("tile (%d,%d) outside map %dx%d", tile.Row, tile.Col, m.rows, m.cols)
	}
	if m.tiles[tile.Row][tile.Col] != nil {
		return fmt.Errorf("duplicate tile at (%d,%d)", tile.Row, tile.Col)
	}
	m.tiles[tile.Row][tile.Col] = tile

	if tile.Portal != "" {
		if _, exists := m.portals[tile.Portal]; exists {
			return fmt.Errorf("duplicate portal %q at (%d,%d)", tile.Portal, tile.Row, tile.Col)
		}
		m.portals[tile.Portal] = tile
	}
	if tile.Platform != "" {
		m.platforms[tile.Platform] = append(m.platforms[tile.Platform], tile)
	}
	return nil
}

// Size 返回地图的行列数
func (m *LevelMap) Size() (rows, cols int) {
	return m.rows, m.cols
}

// Bounds 返回地图的世界坐标矩形
func (m *LevelMap) Bounds() utils.Rect {
	return utils.Rect{X: 0, Y: 0, W: float64(m.cols) * TileLength, H: float64(m.rows) * TileLength}
}

// TileAt 返回覆盖给定世界坐标的瓦片，不存在时返回 nil
func (m *LevelMap) TileAt(p utils.Vec2) *TrackTile {
	if p.X < 0 || p.Y < 0 {
		return nil
	}
	row := int(p.Y) / TileLength
	col := int(p.X) / TileLength
	if row >= m.rows || col >= m.cols {
		return nil
	}
	return m.tiles[row][col]
}

// Neighbour 返回给定瓦片在某罗盘方位上的相邻瓦片，不存在时返回 nil
func (m *LevelMap) Neighbour(tile *TrackTile, c types.Compass) *TrackTile {
	dRow, dCol := c.Offset()
	row, col := tile.Row+dRow, tile.Col+dCol
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return nil
	}
	return m.tiles[row][col]
}

// Platforms 返回站台标识到瓦片组的映射
func (m *LevelMap) Platforms() map[types.PlatformID][]*TrackTile {
	return m.platforms
}

// PlatformRect 返回站台所有瓦片的并集矩形
// 站台不存在时返回零值和 false
func (m *LevelMap) PlatformRect(id types.PlatformID) (utils.Rect, bool) {
	tiles, ok := m.platforms[id]
	if !ok || len(tiles) == 0 {
		return utils.Rect{}, false
	}
	rect := tiles[0].Rect()
	for _, t := range tiles[1:] {
		rect = rect.Union(t.Rect())
	}
	return rect, true
}

// Portals 返回传送门标识到瓦片的映射
func (m *LevelMap) Portals() map[types.PortalID]*TrackTile {
	return m.portals
}

// Portal 按标识查找传送门瓦片
func (m *LevelMap) Portal(id types.PortalID) (*TrackTile, bool) {
	tile, ok := m.portals[id]
	return tile, ok
}

// ToggleSwitchAt 切换覆盖给定世界坐标的瓦片道岔
// 返回是否确实发生了切换（点到了带道岔的瓦片）
func (m *LevelMap) ToggleSwitchAt(p utils.Vec2) bool {
	tile := m.TileAt(p)
	if tile == nil || !tile.HasSwitch() {
		return false
	}
	tile.Toggle()
	return true
}

// Draw 绘制全部瓦片
func (m *LevelMap) Draw(screen *ebiten.Image) {
	for _, row := range m.tiles {
		for _, tile := range row {
			if tile != nil {
				tile.Draw(screen)
			}
		}
	}
}
