package types

import (
	"fmt"
	"time"
)

// Speed 定义列车速度档位，取值范围 1..5
// 速度同时决定每帧前进的轨迹点数和停靠等待时长
type Speed int

const (
	// MinSpeed 最低速度档位
	MinSpeed Speed = 1
	// MaxSpeed 最高速度档位
	MaxSpeed Speed = 5
)

// waitDelayBySpeed 速度档位对应的停靠等待时长
// 速度越快等待越短（原版数值表）
var waitDelayBySpeed = map[Speed]time.Duration{
	1: 5000 * time.Millisecond,
	2: 4000 * time.Millisecond,
	3: 3000 * time.Millisecond,
	4: 2000 * time.Millisecond,
	5: 1000 * time.Millisecond,
}

// NewSpeed 构造速度档位，超出 1..5 范围时返回错误
func NewSpeed(v int) (Speed, error) {
	s := Speed(v)
	if s < MinSpeed || s > MaxSpeed {
		return 0, fmt.Errorf("invalid speed %d: must be in range %d..%d", v, MinSpeed, MaxSpeed)
	}
	return s, nil
}

// WaitDelay 返回该速度档位对应的停靠等待时长
func (s Speed) WaitDelay() time.Duration {
	return waitDelayBySpeed[s]
}

// Step 返回每帧前进的轨迹点数
func (s Speed) Step() int {
	return int(s)
}
