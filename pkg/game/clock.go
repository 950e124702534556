package game

import "time"

// SystemClock 走真实时间的单调时钟
// 列车的等待计时器每帧轮询当前时间，不依赖回调或定时器线程
type SystemClock struct{}

// Now 返回当前时间
func (SystemClock) Now() time.Time {
	return time.Now()
}
