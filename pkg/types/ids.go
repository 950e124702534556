package types

// PortalID 传送门标识符
// 传送门是地图边缘的出入口瓦片，列车由此生成和消失
type PortalID string

// PlatformID 站台标识符
// 站台是命名的停靠区域，列车需完全进入站台区域才触发停靠
type PlatformID string
