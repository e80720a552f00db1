package systems

import (
	"math"
	"sort"

	"github.com/decker502/hazardwaves/pkg/components"
	"github.com/decker502/hazardwaves/pkg/ecs"
	"github.com/decker502/hazardwaves/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// Projection 俯视投影：X 映射到屏幕水平方向，Z 映射到屏幕竖直方向
// FarZ 对应屏幕顶端，NearZ（玩家边界）对应屏幕底端
type Projection struct {
	ScreenWidth    int
	ScreenHeight   int
	WorldHalfWidth float64 // 世界坐标 X 的可见半宽
	FarZ           float64
	NearZ          float64
}

// WorldToScreen 将世界坐标 (x, z) 转换为屏幕坐标
func (p Projection) WorldToScreen(x, z float64) (float64, float64) {
	halfW := float64(p.ScreenWidth) / 2
	sx := halfW
	if p.WorldHalfWidth > 0 {
		sx += x / p.WorldHalfWidth * halfW
	}

	depth := p.FarZ - p.NearZ
	if depth == 0 {
		return sx, 0
	}
	sy := (p.FarZ - z) / depth * float64(p.ScreenHeight)
	return sx, sy
}

// RenderSystem 绘制背景与所有带贴图的实体
// 贴图在首次绘制时通过 ResourceManager 解析，缺失的资源使用占位图
type RenderSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	projection      Projection
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager, projection Projection) *RenderSystem {
	return &RenderSystem{
		entityManager:   em,
		resourceManager: rm,
		projection:      projection,
	}
}

// DrawBackground 将背景贴图拉伸铺满屏幕
func (s *RenderSystem) DrawBackground(screen *ebiten.Image, imageRef string) {
	if imageRef == "" {
		return
	}
	img := s.resourceManager.ImageOrPlaceholder(imageRef)
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(s.projection.ScreenWidth)/float64(bounds.Dx()),
		float64(s.projection.ScreenHeight)/float64(bounds.Dy()),
	)
	screen.DrawImage(img, op)
}

// Draw 绘制所有贴图实体，远处（Z 大）的先画
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	type drawItem struct {
		id    ecs.EntityID
		world components.TransformComponent
	}

	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.TransformComponent](s.entityManager)
	items := make([]drawItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, drawItem{id: id, world: WorldTransform(s.entityManager, id)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].world.Z > items[j].world.Z
	})

	for _, item := range items {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, item.id)
		if sprite.Image == nil {
			sprite.Image = s.resourceManager.ImageOrPlaceholder(sprite.ImageRef)
		}

		bounds := sprite.Image.Bounds()
		sx, sy := s.projection.WorldToScreen(item.world.X, item.world.Z)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		op.GeoM.Rotate(item.world.Yaw * math.Pi / 180)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(sprite.Image, op)
	}
}
