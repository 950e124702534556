package config

// 窗口与界面布局常量
const (
	// GameWindowWidth 游戏窗口逻辑宽度
	GameWindowWidth = 640
	// GameWindowHeight 游戏窗口逻辑高度
	GameWindowHeight = 480
	// GameWindowTitle 窗口标题
	GameWindowTitle = "调度列车 Track Switching"

	// GoalFontSize 目标指示标签的字号
	GoalFontSize = 10
	// SummaryFontSize 关卡结算文本的字号
	SummaryFontSize = 16

	// GoalFontPath 目标标签字体文件路径，缺失时退化为调试文本
	GoalFontPath = "assets/fonts/Verdana.ttf"

	// LocomotiveImagePath 机车贴图路径，缺失时退化为矢量占位图
	LocomotiveImagePath = "assets/trains/ice_loc.png"
	// CarriageImagePath 客车厢贴图路径，缺失时退化为矢量占位图
	CarriageImagePath = "assets/trains/ice_wagon.png"
)
