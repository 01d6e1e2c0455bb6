// Package testutil 测试专用的辅助类型
package testutil

// ScriptedRandom 按顺序返回预设值的随机源，用于测试
//
// 预设值耗尽后：
//   - Float64 返回 0.5（区间中点）
//   - Intn 返回 n-1，使 utils.OneIn(n) 判定为未命中
type ScriptedRandom struct {
	Floats []float64
	Ints   []int
}

// Float64 实现 utils.Random
func (s *ScriptedRandom) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.5
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Intn 实现 utils.Random
func (s *ScriptedRandom) Intn(n int) int {
	if len(s.Ints) == 0 {
		return n - 1
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v % n
}
