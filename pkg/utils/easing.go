package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，超出范围的输入会先被截断

// Clamp01 将 t 截断到 [0, 1]
func Clamp01(t float64) float64 {
	return Clamp(t, 0, 1)
}

// EaseOutCubic 三次方缓出，开始快、结束慢
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInQuad 二次方缓入，开始慢、结束快
// f(t) = t²
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
