// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Direction 定义列车在轨迹上的行进方向
//
// FORWARD 表示朝轨迹缓冲区的右端（索引增大）行进，
// BACKWARD 表示朝左端（索引减小）行进。
type Direction int

const (
	// Forward 向轨迹右端行进
	Forward Direction = iota
	// Backward 向轨迹左端行进
	Backward
)

// String 返回方向的字符串表示
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// Opposite 返回相反方向
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}
