// Package tilemap 提供轨道瓦片和关卡地图
//
// 关卡地图是固定尺寸的瓦片网格，每块瓦片携带一条主路径和可选的备用路径。
// 路径用两个字符编码（如 "mm"、"ud"），字符取自 {u, m, d}，分别表示
// 路径在瓦片左/右边缘的高度：上、中、下。列车沿瓦片内部逐像素展开的
// 路径点行进（每个 x 像素列对应一个路径点）。
//
// 瓦片还可以承担两种角色：
//   - 传送门（Portal）：地图边缘的出入口，列车由此生成和消失
//   - 站台（Platform）：命名停靠区，列车完全进入后触发停靠
package tilemap

import (
	"fmt"
	"image/color"

	"github.com/decker502/trackswitch/pkg/types"
	"github.com/decker502/trackswitch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TileLength 瓦片边长（像素），同时是每块瓦片贡献的轨迹点数
const TileLength = 32

// pathCharY 路径字符对应的瓦片内 y 坐标
// u=上边缘, m=中线, d=下边缘（原版常量表）
var pathCharY = map[byte]float64{
	'u': 0,
	'm': TileLength/2 - 1,
	'd': TileLength - 1,
}

// TrackTile 表示地图上的一块轨道瓦片
type TrackTile struct {
	Row int
	Col int

	// MainPath 主路径编码，如 "mm"
	MainPath string
	// AltPath 备用路径编码，空字符串表示没有道岔
	AltPath string

	// Portal 传送门标识，空表示不是传送门
	Portal types.PortalID
	// Platform 站台标识，空表示不是站台
	Platform types.PlatformID

	// useAlt 道岔当前是否切到备用路径
	useAlt bool
}

// NewTrackTile 构造轨道瓦片并校验路径编码
func NewTrackTile(row, col int, mainPath, altPath string) (*TrackTile, error) {
	if err := validatePathCode(mainPath); err != nil {
		return nil, fmt.Errorf("tile (%d,%d) main path: %w", row, col, err)
	}
	if altPath != "" {
		if err := validatePathCode(altPath); err != nil {
			return nil, fmt.Errorf("tile (%d,%d) alt path: %w", row, col, err)
		}
	}
	return &TrackTile{Row: row, Col: col, MainPath: mainPath, AltPath: altPath}, nil
}

func validatePathCode(code string) error {
	if len(code) != 2 {
		return fmt.Errorf("path code %q must have exactly 2 characters", code)
	}
	for i := 0; i < 2; i++ {
		if _, ok := pathCharY[code[i]]; !ok {
			return fmt.Errorf("path code %q contains invalid character %q", code, code[i])
		}
	}
	return nil
}

// Position 返回瓦片左上角的世界坐标
func (t *TrackTile) Position() utils.Vec2 {
	return utils.Vec2{X: float64(t.Col) * TileLength, Y: float64(t.Row) * TileLength}
}

// Rect 返回瓦片的世界坐标矩形
func (t *TrackTile) Rect() utils.Rect {
	pos := t.Position()
	return utils.Rect{X: pos.X, Y: pos.Y, W: TileLength, H: TileLength}
}

// HasSwitch 返回瓦片是否带道岔（存在备用路径）
func (t *TrackTile) HasSwitch() bool {
	return t.AltPath != ""
}

// ActivePath 返回当前生效的路径编码
func (t *TrackTile) ActivePath() string {
	if t.useAlt && t.AltPath != "" {
		return t.AltPath
	}
	return t.MainPath
}

// Toggle 切换道岔。没有备用路径的瓦片调用无效果
func (t *TrackTile) Toggle() {
	if t.AltPath != "" {
		t.useAlt = !t.useAlt
	}
}

// PathPoints 返回列车穿越该瓦片时依次经过的世界坐标点
//
// 路径由三个控制点分段线性展开：左边缘入口、瓦片中心、右边缘出口。
// 每个 x 像素列恰好产生一个点，因此返回的点数固定为 TileLength。
// 点序固定从左到右，与列车行进方向无关。
func (t *TrackTile) PathPoints() []utils.Vec2 {
	code := t.ActivePath()
	entryY := pathCharY[code[0]]
	exitY := pathCharY[code[1]]
	const midX = float64(TileLength/2 - 1)
	const midY = float64(TileLength/2 - 1)

	pos := t.Position()
	points := make([]utils.Vec2, TileLength)
	for x := 0; x < TileLength; x++ {
		fx := float64(x)
		var y float64
		if fx <= midX {
			// 入口控制点 -> 中心控制点
			y = entryY + (midY-entryY)*fx/midX
		} else {
			// 中心控制点 -> 出口控制点
			y = midY + (exitY-midY)*(fx-midX)/(TileLength-1-midX)
		}
		points[x] = utils.Vec2{X: pos.X + fx, Y: pos.Y + y}
	}
	return points
}

// ContainsPathPoint 判断给定世界坐标点是否是该瓦片当前路径上的点
// 用于列车轨迹延伸时的道岔衔接检查
func (t *TrackTile) ContainsPathPoint(p utils.Vec2) bool {
	const eps = 0.5
	for _, pt := range t.PathPoints() {
		if pt.AlmostEqual(p, eps) {
			return true
		}
	}
	return false
}

// 瓦片绘制用的配色
var (
	tileBackground     = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	portalBackground   = color.RGBA{R: 70, G: 110, B: 220, A: 255}
	platformBackground = color.RGBA{R: 90, G: 190, B: 90, A: 255}
	activeRailColor    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	inactiveRailColor  = color.RGBA{R: 40, G: 40, B: 40, A: 90}
)

// Draw 绘制瓦片：角色底色、失效路径（半透明）、生效路径
// 美术资源缺失时使用矢量占位绘制，占位图形与原版瓦片布局一致
func (t *TrackTile) Draw(screen *ebiten.Image) {
	pos := t.Position()
	bg := tileBackground
	if t.Portal != "" {
		bg = portalBackground
	} else if t.Platform != "" {
		bg = platformBackground
	}
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), TileLength, TileLength, bg, false)

	if t.HasSwitch() {
		t.drawPath(screen, t.inactivePath(), inactiveRailColor)
	}
	t.drawPath(screen, t.ActivePath(), activeRailColor)
}

func (t *TrackTile) inactivePath() string {
	if t.useAlt {
		return t.MainPath
	}
	return t.AltPath
}

// drawPath 以两段折线绘制路径编码
func (t *TrackTile) drawPath(screen *ebiten.Image, code string, clr color.Color) {
	if code == "" {
		return
	}
	pos := t.Position()
	entryY := float32(pos.Y + pathCharY[code[0]])
	exitY := float32(pos.Y + pathCharY[code[1]])
	midX := float32(pos.X + TileLength/2 - 1)
	midY := float32(pos.Y + TileLength/2 - 1)

	vector.StrokeLine(screen, float32(pos.X), entryY, midX, midY, 2, clr, true)
	vector.StrokeLine(screen, midX, midY, float32(pos.X+TileLength-1), exitY, 2, clr, true)
}
