package types

// GoalStatus 定义列车目标（停靠站台、出口传送门）的判定状态
//
// 状态机只会发生一次迁移：Pending -> Succeeded 或 Pending -> Failed，
// 一旦判定完成就不会再被重新评估。
type GoalStatus int

const (
	// Pending 目标尚未判定
	Pending GoalStatus = iota
	// Succeeded 目标达成（站台/传送门与任务目标一致）
	Succeeded
	// Failed 目标失败（停靠或穿越了错误的站台/传送门）
	Failed
)

// String 返回状态的字符串表示
func (s GoalStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Resolved 返回目标是否已经判定完成
func (s GoalStatus) Resolved() bool {
	return s != Pending
}
