package components

// TransformComponent 实体的局部位置与朝向
// 坐标系：X 水平，Y 高度，Z 纵深（玩家位于 Z 较小的一侧）
// 子实体的位置相对父实体
type TransformComponent struct {
	X, Y, Z float64
	Yaw     float64 // 绕 Y 轴旋转（角度）
}

// VelocityComponent 每秒位移
type VelocityComponent struct {
	VX, VY, VZ float64
}
