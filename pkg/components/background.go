package components

// BackgroundTileComponent 标记滚动背景瓦片
type BackgroundTileComponent struct{}

// ScrollMarkerComponent 标记驱动背景生成的滚动标记实体
// 该实体不可见、不会被边界检测删除
type ScrollMarkerComponent struct{}
