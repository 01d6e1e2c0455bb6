package utils

import (
	"math/rand"
	"time"
)

// Random 仿真使用的随机数来源
// 系统只依赖该接口，测试时可替换为脚本化实现
type Random interface {
	// Float64 返回 [0.0, 1.0) 区间的随机数
	Float64() float64
	// Intn 返回 [0, n) 区间的随机整数
	Intn(n int) int
}

// PRNG 对标准库随机数生成器的封装，支持固定种子
type PRNG struct {
	rng *rand.Rand
}

// NewPRNG 使用指定种子创建随机数生成器
// 种子为 0 时使用当前时间
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{rng: rand.New(rand.NewSource(seed))}
}

// Float64 返回 [0.0, 1.0) 区间的随机数
func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

// Intn 返回 [0, n) 区间的随机整数
func (p *PRNG) Intn(n int) int {
	return p.rng.Intn(n)
}

// OneIn 以 1/n 的概率返回 true
// 只消耗一次 Intn(n) 调用；n <= 1 时恒为 true
func OneIn(r Random, n int) bool {
	if n <= 1 {
		return true
	}
	return r.Intn(n) == 0
}

// Range 返回 [lo, hi) 区间的均匀随机数；lo >= hi 时返回 lo
func Range(r Random, lo, hi float64) float64 {
	if lo >= hi {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// ChooseWeighted 按权重随机选择下标
// 权重之和 <= 0 时返回 0
func ChooseWeighted(r Random, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	roll := r.Intn(total)
	upto := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > roll {
			return i
		}
		upto += w
	}
	return len(weights) - 1
}
