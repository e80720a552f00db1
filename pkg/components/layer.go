package components

import "github.com/decker502/hazardwaves/pkg/types"

// LayerComponent 实体所在的渲染/碰撞分组
type LayerComponent struct {
	Layer types.Layer
}
