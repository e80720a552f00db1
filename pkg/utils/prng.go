package utils

import (
	"math/rand/v2"
	"time"
)

// RandomSource 均匀随机数来源
// 生成系统只依赖这个接口，测试时可以替换为固定序列
type RandomSource interface {
	// IntN 返回 [0, n) 内均匀分布的整数，n <= 0 时 panic
	IntN(n int) int
	// Float64 返回 [0.0, 1.0) 内的浮点数
	Float64() float64
}

// PRNG 可设定种子的随机数生成器（PCG）
type PRNG struct {
	rng  *rand.Rand
	seed uint64
}

// NewPRNG 创建随机数生成器
// seed 为 0 时使用当前时间
func NewPRNG(seed uint64) *PRNG {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PRNG{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed 返回实际使用的种子，便于复现一局
func (p *PRNG) Seed() uint64 {
	return p.seed
}

// IntN 返回 [0, n) 内的随机整数（无偏）
func (p *PRNG) IntN(n int) int {
	return p.rng.IntN(n)
}

// Float64 返回 [0.0, 1.0) 内的随机浮点数
func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

// RangeFloat 返回 [-spread, spread] 内的随机值
func RangeFloat(src RandomSource, spread float64) float64 {
	if spread <= 0 {
		return 0
	}
	return (src.Float64()*2 - 1) * spread
}
