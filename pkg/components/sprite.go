package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现
// ImageRef 是资源 ID；Image 在首次渲染时由 ResourceManager 解析并缓存
type SpriteComponent struct {
	ImageRef string
	Image    *ebiten.Image
}
