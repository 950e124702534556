package types

// Compass 定义八向罗盘方位，用于地图瓦片的邻居查询
type Compass int

const (
	// NW 西北
	NW Compass = iota
	// N 北
	N
	// NE 东北
	NE
	// W 西
	W
	// E 东
	E
	// SW 西南
	SW
	// S 南
	S
	// SE 东南
	SE
)

// Offset 返回该方位对应的网格行列偏移
func (c Compass) Offset() (dRow, dCol int) {
	switch c {
	case NW:
		return -1, -1
	case N:
		return -1, 0
	case NE:
		return -1, 1
	case W:
		return 0, -1
	case E:
		return 0, 1
	case SW:
		return 1, -1
	case S:
		return 1, 0
	case SE:
		return 1, 1
	}
	return 0, 0
}

// String 返回方位的字符串表示
func (c Compass) String() string {
	switch c {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case W:
		return "W"
	case E:
		return "E"
	case SW:
		return "SW"
	case S:
		return "S"
	case SE:
		return "SE"
	default:
		return "Unknown"
	}
}
