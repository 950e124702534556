package train

import (
	"image/color"
	"math"

	"github.com/decker502/trackswitch/pkg/tilemap"
	"github.com/decker502/trackswitch/pkg/types"
	"github.com/decker502/trackswitch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	goalIndicatorSize  = 10
	waitIndicatorSize  = 14
	waitIndicatorWidth = 2
)

var (
	platformGoalColor  = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	exitGoalColor      = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	goalLabelColor     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	waitIndicatorColor = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

// Draw 绘制列车：车厢、当前目标指示、等待进度指示
//
// face 为目标标签字体，传 nil 时退化为调试文本绘制
// （跟字体资源加载失败时的降级路径一致）。
func (t *Train) Draw(screen *ebiten.Image, face *text.GoTextFace) {
	if !t.spawned {
		return
	}

	for _, w := range t.wagons {
		w.Draw(screen)
	}

	t.drawGoalIndicator(screen, face)

	if t.waiting {
		t.drawWaitIndicator(screen)
	}
}

// drawGoalIndicator 在头车上方画当前目标：
// 站台未决时显示目标站台（绿），出口未决时显示目标出口（蓝），
// 全部判定完成后不再显示
func (t *Train) drawGoalIndicator(screen *ebiten.Image, face *text.GoTextFace) {
	var bg color.RGBA
	var label string
	switch {
	case t.platformStatus == types.Pending:
		bg = platformGoalColor
		label = string(t.platform)
	case t.exitPortalStatus == types.Pending:
		bg = exitGoalColor
		label = string(t.exitPortal)
	default:
		return
	}

	center := t.LeadWagon().Position()
	x := float32(center.X - goalIndicatorSize/2)
	y := float32(center.Y - goalIndicatorSize/2)
	vector.DrawFilledRect(screen, x, y, goalIndicatorSize, goalIndicatorSize, bg, false)

	if face != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+3, float64(y)+1)
		op.ColorScale.ScaleWithColor(goalLabelColor)
		text.Draw(screen, label, face, op)
	} else {
		ebitenutil.DebugPrintAt(screen, label, int(x), int(y)-4)
	}
}

// drawWaitIndicator 在列车前方一瓦片处画等待进度弧
// 弧的扫过角度与剩余等待时间成正比
func (t *Train) drawWaitIndicator(screen *ebiten.Image) {
	center := t.LeadWagon().Position()
	if t.direction == types.Backward {
		center = center.Sub(utils.Vec2{X: tilemap.TileLength})
	} else {
		center = center.Add(utils.Vec2{X: tilemap.TileLength})
	}

	sweep := t.WaitFraction() * 2 * math.Pi
	if sweep <= 0 {
		return
	}

	// 用短线段逼近圆弧
	const radius = float64(waitIndicatorSize) / 2
	segments := int(math.Ceil(sweep / (math.Pi / 16)))
	if segments < 1 {
		segments = 1
	}
	prev := utils.Vec2{X: center.X + radius, Y: center.Y}
	for i := 1; i <= segments; i++ {
		a := sweep * float64(i) / float64(segments)
		// 屏幕 y 向下，取负角让弧逆时针收缩
		p := utils.Vec2{X: center.X + radius*math.Cos(-a), Y: center.Y + radius*math.Sin(-a)}
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y),
			waitIndicatorWidth, waitIndicatorColor, true)
		prev = p
	}
}
