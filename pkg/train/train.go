package train

import (
	"fmt"
	"math"
	"time"

	"github.com/decker502/trackswitch/pkg/tilemap"
	"github.com/decker502/trackswitch/pkg/types"
	"github.com/decker502/trackswitch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Clock 单调时钟。等待计时器在每帧轮询当前时间，不使用回调
type Clock interface {
	Now() time.Time
}

// Train 自洽的列车：由车厢组成，从 entry 传送门生成，
// 在站台停靠一次，最终从任意传送门驶出地图消失
//
// 玩家任务给出目标站台和目标出口，但列车会在任何完全进入的站台停靠、
// 在任何穿越的传送门消失，目标匹配与否只决定成败判定。
// 列车沿轨迹缓冲区内的点移动，缓冲区由列车独占持有，
// 所有修改都发生在自身的 Update 调用内（单线程协作式推进）。
type Train struct {
	levelmap *tilemap.LevelMap
	clock    Clock

	trajectory *Trajectory
	direction  types.Direction
	speed      types.Speed

	wagons []*Wagon

	// 任务目标
	entryPortal      types.PortalID
	platform         types.PlatformID
	platformStatus   types.GoalStatus
	exitPortal       types.PortalID
	exitPortalStatus types.GoalStatus

	// 状态标志
	spawned bool
	moving  bool
	waiting bool
	// blocked 上一帧因道岔衔接失败或轨道耗尽而未能前进
	blocked bool

	waitEnd   time.Time
	waitTotal time.Duration
}

// NewTrain 构造列车并准备生成用的初始轨迹
//
// 初始轨迹 = 入口瓦片的路径 + 按列车总长补齐的直线段。
// 行进方向由入口瓦片的邻居决定：西侧（NW/W/SW）没有邻居说明
// 入口在地图左缘，列车向右行驶（Forward），补白加在路径左侧；
// 东侧没有邻居则相反。
func NewTrain(m *tilemap.LevelMap, clock Clock, entry types.PortalID,
	platform types.PlatformID, exit types.PortalID, speed types.Speed) (*Train, error) {

	entryTile, ok := m.Portal(entry)
	if !ok {
		return nil, fmt.Errorf("entry portal %q not found in level map", entry)
	}
	if _, ok := m.Portal(exit); !ok {
		return nil, fmt.Errorf("exit portal %q not found in level map", exit)
	}

	t := &Train{
		levelmap:         m,
		clock:            clock,
		speed:            speed,
		entryPortal:      entry,
		platform:         platform,
		platformStatus:   types.Pending,
		exitPortal:       exit,
		exitPortalStatus: types.Pending,
	}

	// 标准编组：机车 + 客车厢 + 反向机车
	t.wagons = []*Wagon{
		NewWagon(Locomotive, false, nil),
		NewWagon(Carriage, false, nil),
		NewWagon(Locomotive, true, nil),
	}

	spawnPath := entryTile.PathPoints()
	padTiles := (t.Length() + tilemap.TileLength - 1) / tilemap.TileLength
	padLen := padTiles * tilemap.TileLength

	switch {
	case m.Neighbour(entryTile, types.NW) == nil &&
		m.Neighbour(entryTile, types.W) == nil &&
		m.Neighbour(entryTile, types.SW) == nil:
		// 入口在左缘：补白在路径左侧，车头指向路径末端
		points := make([]utils.Vec2, 0, padLen+len(spawnPath))
		first := spawnPath[0]
		for i := 0; i < padLen; i++ {
			points = append(points, utils.Vec2{X: first.X - float64(padLen-i), Y: first.Y})
		}
		points = append(points, spawnPath...)
		t.direction = types.Forward
		t.trajectory = NewTrajectory(points, len(points)-1, t.Length())

	case m.Neighbour(entryTile, types.NE) == nil &&
		m.Neighbour(entryTile, types.E) == nil &&
		m.Neighbour(entryTile, types.SE) == nil:
		// 入口在右缘：补白在路径右侧，车头指向路径起点
		points := make([]utils.Vec2, 0, padLen+len(spawnPath))
		points = append(points, spawnPath...)
		last := spawnPath[len(spawnPath)-1]
		for i := 1; i <= padLen; i++ {
			points = append(points, utils.Vec2{X: last.X + float64(i), Y: last.Y})
		}
		t.direction = types.Backward
		// 左游标 0，对应右游标 = 列车长 - 1
		t.trajectory = NewTrajectory(points, t.Length()-1, t.Length())

	default:
		return nil, fmt.Errorf("entry portal %q is not on a lateral map edge", entry)
	}

	return t, nil
}

// Update 推进一帧：目标判定 -> 轨迹推进 -> 车厢摆放 -> 等待到期处理
func (t *Train) Update() {
	if !t.spawned {
		return
	}

	if t.platformStatus == types.Pending {
		t.checkForPlatform()
	} else if t.exitPortalStatus == types.Pending {
		t.checkForExitPortal()
	}

	if t.moving {
		t.advance()
	}

	if t.waiting && t.clock.Now().After(t.waitEnd) {
		t.waiting = false
		t.Start(t.direction)
	}
}

// advance 延伸/裁剪轨迹缓冲区并移动游标，成功后重摆车厢
func (t *Train) advance() {
	t.blocked = false
	t.extendAndTrim()
	if !t.trajectory.Shift(t.pointerIncrement()) {
		// 前方没有可用轨迹，本帧不动
		t.blocked = true
		return
	}
	t.placeWagons()
}

// extendAndTrim 按行进方向维护滑动窗口：
// 前导端快要越界时取下一块瓦片的路径点（或边缘补白）延伸，
// 尾端驶过整块瓦片后裁掉对应的点
func (t *Train) extendAndTrim() {
	inc := t.pointerIncrement()
	tr := t.trajectory

	switch t.direction {
	case types.Forward:
		if tr.Rightmost()+inc >= tr.Len() {
			next := tr.ExtrapolateForward()
			if tile := t.levelmap.TileAt(next); tile != nil {
				// 道岔没有接上时不延伸，越界保护会让列车停住
				if tile.ContainsPathPoint(next) {
					tr.Append(tile.PathPoints())
				}
			} else {
				// 驶出可用地图范围，补直线
				tr.AppendStraightPadding()
			}
		}
		if tr.Leftmost()+inc >= tilemap.TileLength {
			tr.TrimFront()
		}

	case types.Backward:
		if tr.Leftmost()+inc < 0 {
			next := tr.ExtrapolateBackward()
			if tile := t.levelmap.TileAt(next); tile != nil {
				if tile.ContainsPathPoint(next) {
					tr.Prepend(tile.PathPoints())
				}
			} else {
				tr.PrependStraightPadding()
			}
		}
		if tr.Rightmost()+inc < tr.Len()-tilemap.TileLength {
			tr.TrimBack()
		}
	}
}

// pointerIncrement 返回本帧的游标增量（含方向符号）
func (t *Train) pointerIncrement() int {
	if !t.moving {
		return 0
	}
	if t.direction == types.Backward {
		return -t.speed.Step()
	}
	return t.speed.Step()
}

// placeWagons 从前导游标开始逐节摆放车厢
// 每节车厢取两个轴点定位，下一节的参考游标回退一节车厢长度
func (t *Train) placeWagons() {
	offset := t.trajectory.Rightmost()
	for _, w := range t.wagons {
		front := t.trajectory.At(offset - axleFrontOffset)
		rear := t.trajectory.At(offset - axleRearOffset)
		w.Place(front, rear)
		offset -= w.Length()
	}
}

// checkForPlatform 站台停靠判定，只在 platformStatus 未决时调用
//
// 列车包围矩形完全落入任一站台的并集矩形时触发停靠：
// 开始等待（时长由速度档位决定）、按出口传送门方位调转方向、
// 并一次性判定目标成败。
func (t *Train) checkForPlatform() {
	trainRect := t.Rect()
	for id := range t.levelmap.Platforms() {
		rect, ok := t.levelmap.PlatformRect(id)
		if !ok || !rect.Contains(trainRect) {
			continue
		}

		t.Wait(t.speed.WaitDelay())

		// 依据车尾与出口传送门的相对位置调转方向
		if exitTile, found := t.levelmap.Portal(t.exitPortal); found {
			rear := t.trajectory.At(t.trajectory.Leftmost())
			if rear.X > exitTile.Rect().Center().X {
				t.direction = types.Backward
			} else {
				t.direction = types.Forward
			}
		}

		if id == t.platform {
			t.platformStatus = types.Succeeded
		} else {
			t.platformStatus = types.Failed
		}
		return
	}
}

// checkForExitPortal 出口判定，只在站台判定完成后调用
// 列车包围矩形与任一传送门瓦片相交即判定，成败取决于标识是否匹配。
// 实际消失（despawn）由外部场景触发，不在这里发生
func (t *Train) checkForExitPortal() {
	trainRect := t.Rect()
	for _, tile := range t.levelmap.Portals() {
		if !trainRect.Intersects(tile.Rect()) {
			continue
		}
		if tile.Portal == t.exitPortal {
			t.exitPortalStatus = types.Succeeded
		} else {
			t.exitPortalStatus = types.Failed
		}
		return
	}
}

// Spawn 生成列车：进入已预计算的初始方向，立即开始初始等待，
// 并强制摆放一次车厢，保证等待期间列车渲染在正确位置
func (t *Train) Spawn() {
	t.spawned = true
	t.Start(t.direction)
	t.Wait(t.speed.WaitDelay())
	t.placeWagons()
}

// Despawn 消除列车。轨迹缓冲区保留给调用方的回收策略处理
func (t *Train) Despawn() {
	t.spawned = false
	t.Stop()
}

// Start 以指定方向启动。等待期间是无效操作
func (t *Train) Start(d types.Direction) {
	if t.waiting {
		return
	}
	t.direction = d
	t.moving = true
}

// Stop 停止移动，位置和方向保持不变
func (t *Train) Stop() {
	t.moving = false
}

// Wait 停车等待指定时长，到期后按当前方向恢复移动
func (t *Train) Wait(d time.Duration) {
	t.waitEnd = t.clock.Now().Add(d)
	t.waitTotal = d
	t.Stop()
	t.waiting = true
}

// CollidesRect 判断占用窗口（左游标..右游标）内是否有轨迹点落入给定矩形
// 供外部的碰撞/界面逻辑使用
func (t *Train) CollidesRect(r utils.Rect) bool {
	for i := t.trajectory.Leftmost(); i <= t.trajectory.Rightmost(); i++ {
		if r.ContainsPoint(t.trajectory.At(i)) {
			return true
		}
	}
	return false
}

// Rect 返回所有车厢包围矩形的并集
// 车厢列表为空是契约违规，直接 panic
func (t *Train) Rect() utils.Rect {
	if len(t.wagons) == 0 {
		panic("train: computing bounding rect of a train with no wagons")
	}
	rect := t.wagons[0].Rect()
	for _, w := range t.wagons[1:] {
		rect = rect.Union(w.Rect())
	}
	return rect
}

// Length 返回列车总长（所有车厢长度之和，轨迹点数）
func (t *Train) Length() int {
	total := 0
	for _, w := range t.wagons {
		total += w.Length()
	}
	return total
}

// LeadWagon 返回当前行进方向上的头车
func (t *Train) LeadWagon() *Wagon {
	if t.direction == types.Backward {
		return t.wagons[len(t.wagons)-1]
	}
	return t.wagons[0]
}

// WaitFraction 返回剩余等待时间占总时长的比例（0..1），用于进度指示
func (t *Train) WaitFraction() float64 {
	if !t.waiting || t.waitTotal <= 0 {
		return 0
	}
	remaining := t.waitEnd.Sub(t.clock.Now())
	if remaining < 0 {
		return 0
	}
	return math.Min(1, float64(remaining)/float64(t.waitTotal))
}

// Spawned 返回列车是否已生成
func (t *Train) Spawned() bool { return t.spawned }

// Moving 返回列车是否在移动
func (t *Train) Moving() bool { return t.moving }

// Waiting 返回列车是否在停靠等待
func (t *Train) Waiting() bool { return t.waiting }

// Blocked 返回上一帧是否因轨道不通而停滞
// 道岔衔接失败原本是无声的停滞，这里显式暴露便于观察
func (t *Train) Blocked() bool { return t.blocked }

// Direction 返回当前行进方向
func (t *Train) Direction() types.Direction { return t.direction }

// Speed 返回速度档位
func (t *Train) Speed() types.Speed { return t.speed }

// Wagons 返回车厢列表（车头到车尾）
func (t *Train) Wagons() []*Wagon { return t.wagons }

// SetSprites 按车厢种类套用外部贴图（车尾机车复用机车贴图，绘制时镜像）
// 传入 nil 保持矢量占位图
func (t *Train) SetSprites(locomotive, carriage *ebiten.Image) {
	for _, w := range t.wagons {
		if w.kind == Locomotive {
			w.SetSprite(locomotive)
		} else {
			w.SetSprite(carriage)
		}
	}
}

// EntryPortal 返回入口传送门标识
func (t *Train) EntryPortal() types.PortalID { return t.entryPortal }

// Platform 返回目标站台标识
func (t *Train) Platform() types.PlatformID { return t.platform }

// PlatformStatus 返回站台目标的判定状态
func (t *Train) PlatformStatus() types.GoalStatus { return t.platformStatus }

// ExitPortal 返回目标出口传送门标识
func (t *Train) ExitPortal() types.PortalID { return t.exitPortal }

// ExitPortalStatus 返回出口目标的判定状态
func (t *Train) ExitPortalStatus() types.GoalStatus { return t.exitPortalStatus }
