package types

// Layer 渲染/碰撞分组
type Layer int

const (
	// LayerDefault 默认层
	LayerDefault Layer = 0
	// LayerBackground 不参与碰撞的背景层，敌方机甲挂在这一层，由附加的贴图负责显示
	LayerBackground Layer = 4
	// LayerObstacle 普通障碍物层
	LayerObstacle Layer = 5
)

// String 返回层的字符串表示
func (l Layer) String() string {
	switch l {
	case LayerDefault:
		return "Default"
	case LayerBackground:
		return "Background"
	case LayerObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Collides 该层上的实体是否作为普通障碍物参与碰撞
func (l Layer) Collides() bool {
	return l != LayerBackground
}

// LayerForKind 返回某类危险物所在的层
func LayerForKind(kind HazardKind) Layer {
	if kind == HazardMachine {
		return LayerBackground
	}
	return LayerObstacle
}
