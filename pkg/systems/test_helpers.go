package systems

import (
	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/types"
)

// scriptedRandom 按固定序列返回随机数，用于精确控制模板/定义的选择
type scriptedRandom struct {
	ints  []int
	next  int
	float float64
}

func (r *scriptedRandom) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.next%len(r.ints)]
	r.next++
	return v % n
}

func (r *scriptedRandom) Float64() float64 {
	return r.float
}

// newTestGameConfig 两个模板（障碍物、机甲），各一个定义
func newTestGameConfig() *config.GameConfig {
	cfg := &config.GameConfig{
		Machines: []config.MachineDefinition{
			{Name: "Raider", Image: "machine_raider", Health: 6, Strength: 4, RangeFeet: 300, Cost: 50, Sound: "laser"},
		},
		Obstacles: []config.ObstacleDefinition{
			{Name: "Rock", Image: "rock_small", Damage: -2, Strength: 1, Money: 10},
		},
		Templates: []config.HazardTemplate{
			{Name: "asteroid", Kind: types.HazardObstacle, Parts: []config.TemplatePart{{Name: "core"}}},
			{Name: "raider", Kind: types.HazardMachine},
		},
		Backgrounds:    []string{"bg_a", "bg_b", "bg_c"},
		SpawnSpread:    config.Vector3{X: 6, Y: 0, Z: 16},
		HazardsPerWave: 2,
		SpawnDelay:     1,
		StartDelay:     0,
		WaveDelay:      1,
		HazardSpeed:    4,
		BoundaryZ:      -10,
	}
	cfg.ApplyDefaults()
	return cfg
}
