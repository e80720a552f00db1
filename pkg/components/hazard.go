package components

import (
	"github.com/decker502/hazardwaves/pkg/config"
	"github.com/decker502/hazardwaves/pkg/types"
)

// HazardComponent 标记一个危险物根实体，并持有它的定义
// 定义由实体自身持有，实体销毁时随之释放
type HazardComponent struct {
	Kind         types.HazardKind
	Definition   config.HazardDefinition // 恰好一个定义，类别与 Kind 一致
	TemplateName string                  // 生成时使用的模板
	Wave         int                     // 生成时的波次索引（0-based）
	Resolved     bool                    // 已与玩家发生过碰撞结算
}
