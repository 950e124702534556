package train

import (
	"image/color"

	"github.com/decker502/trackswitch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// WagonLength 单节车厢占据的轨迹点数（像素）
	WagonLength = 30
	// WagonWidth 车厢绘制宽度（像素）
	WagonWidth = 16

	// 轴点相对前导游标的采样偏移，是刚体的固有常量
	axleFrontOffset = 5
	axleRearOffset  = 24
)

// WagonKind 车厢种类，决定占位绘制的配色
type WagonKind int

const (
	// Locomotive 机车
	Locomotive WagonKind = iota
	// Carriage 客车厢
	Carriage
)

// Wagon 固定长度的刚体车厢
//
// 每帧在轨迹缓冲区上采样两个轴点确定自身位置和朝向：
// 位置取两轴点的中点，朝向取（前轴 - 后轴）向量的角度。
// 车厢由所属列车独占持有，按车头到车尾的顺序排列。
type Wagon struct {
	kind WagonKind
	// mirrored 车尾机车反向绘制
	mirrored bool

	sprite *ebiten.Image
	// placeholder 美术资源缺失时的占位图，惰性创建
	placeholder *ebiten.Image

	position utils.Vec2
	angle    float64
}

// NewWagon 构造车厢。sprite 可为 nil，此时用矢量占位图绘制
func NewWagon(kind WagonKind, mirrored bool, sprite *ebiten.Image) *Wagon {
	return &Wagon{kind: kind, mirrored: mirrored, sprite: sprite}
}

// Length 返回车厢长度（轨迹点数）
func (w *Wagon) Length() int {
	return WagonLength
}

// Kind 返回车厢种类
func (w *Wagon) Kind() WagonKind {
	return w.kind
}

// SetSprite 设置车厢贴图。nil 恢复为占位图绘制
func (w *Wagon) SetSprite(img *ebiten.Image) {
	w.sprite = img
}

// Sprite 返回当前贴图，未设置时为 nil
func (w *Wagon) Sprite() *ebiten.Image {
	return w.sprite
}

// Place 根据两个轴点更新车厢的位置和朝向
func (w *Wagon) Place(axleFront, axleRear utils.Vec2) {
	w.position = utils.Midpoint(axleFront, axleRear)
	w.angle = axleFront.Sub(axleRear).Angle()
}

// Position 返回车厢中心的世界坐标
func (w *Wagon) Position() utils.Vec2 {
	return w.position
}

// Angle 返回车厢朝向（弧度）
func (w *Wagon) Angle() float64 {
	return w.angle
}

// Rect 返回车厢的轴对齐包围矩形（不随旋转变化，跟原版 sprite rect 语义一致）
func (w *Wagon) Rect() utils.Rect {
	return utils.RectFromCenter(w.position, WagonLength, WagonWidth)
}

// Draw 绘制车厢：以中心为锚点旋转后平移到世界坐标
func (w *Wagon) Draw(screen *ebiten.Image) {
	img := w.sprite
	if img == nil {
		img = w.placeholderImage()
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	if w.mirrored {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Rotate(w.angle)
	op.GeoM.Translate(w.position.X, w.position.Y)
	screen.DrawImage(img, op)
}

// placeholderImage 生成车厢占位图：机车深红、车厢浅红，带车窗色带
func (w *Wagon) placeholderImage() *ebiten.Image {
	if w.placeholder != nil {
		return w.placeholder
	}

	body := color.RGBA{R: 200, G: 60, B: 60, A: 255}
	if w.kind == Locomotive {
		body = color.RGBA{R: 150, G: 30, B: 30, A: 255}
	}

	img := ebiten.NewImage(WagonLength, WagonWidth)
	img.Fill(body)
	stripe := ebiten.NewImage(WagonLength-6, 4)
	stripe.Fill(color.RGBA{R: 240, G: 240, B: 240, A: 255})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(3, 3)
	img.DrawImage(stripe, op)

	w.placeholder = img
	return img
}
