// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 处理两套坐标系之间的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点在窗口中心，x 向右，y 向上。仿真中所有位置都使用世界坐标
//   - **屏幕坐标**：原点在窗口左上角，x 向右，y 向下（Ebiten 默认行为）
//
// # 核心转换公式
//
//	screenX = worldX + W/2
//	screenY = H/2 - worldY
//
// 实体位置表示精灵中心；绘制矩形时用 CenteredRect 求左上角。
package utils

// WorldToScreen 世界坐标转屏幕坐标
//
// 参数：
//   - worldX, worldY: 世界坐标（中心原点，y 向上）
//   - screenW, screenH: 窗口尺寸
func WorldToScreen(worldX, worldY, screenW, screenH float64) (float64, float64) {
	return worldX + screenW/2, screenH/2 - worldY
}

// ScreenToWorld 屏幕坐标转世界坐标，WorldToScreen 的逆变换
func ScreenToWorld(screenX, screenY, screenW, screenH float64) (float64, float64) {
	return screenX - screenW/2, screenH/2 - screenY
}

// CenteredRect 以世界坐标中心点和尺寸求屏幕矩形的左上角
//
// 返回：
//   - x, y: 屏幕坐标系下矩形左上角
func CenteredRect(worldX, worldY, width, height, screenW, screenH float64) (x, y float64) {
	cx, cy := WorldToScreen(worldX, worldY, screenW, screenH)
	return cx - width/2, cy - height/2
}

// Clamp 将 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
