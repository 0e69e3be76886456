// pkg/render/scene_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-knife-hit/internal/component"
	"go-knife-hit/internal/config"
	"go-knife-hit/internal/defs"
	"go-knife-hit/internal/utils"
)

const (
	knifeEmbed    = 22.0 // Насколько нож утоплен в мишень
	appleRadius   = 11.0
	riseOffset    = 80.0
	fallSpeedX    = 140.0
	fallGravity   = 1400.0
	fallSpin      = 14.0
	fallLifetime  = 0.8
	bladeFraction = 0.62
)

// SceneRenderer рисует мишень и ножи
type SceneRenderer struct {
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewSceneRenderer() *SceneRenderer {
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(color.White)
	return &SceneRenderer{
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 8),
		is:      make([]uint16, 0, 12),
	}
}

// DrawTarget рисует мишень с яблоками, заранее воткнутыми и
// воткнутыми игроком ножами.
func (r *SceneRenderer) DrawTarget(screen *ebiten.Image, t *component.Target, lib *defs.Library) {
	if t == nil || t.Destroyed {
		return
	}
	scale := config.TargetSpawnScale + (1-config.TargetSpawnScale)*utils.EaseOutBounce(utils.Clamp01(t.Age/config.TargetScaleTime))
	cx, cy := float64(config.TargetCenterX), float64(config.TargetCenterY)
	radius := config.TargetRadius * scale

	base := t.Def.Color.RGBA()
	for _, k := range t.HitKnives {
		r.drawStuck(screen, t.WorldAngle(k.Angle), scale, lib.Skin(k.SkinID))
	}
	for _, a := range t.Obstacles {
		r.drawStuck(screen, t.WorldAngle(a), scale, lib.Skin(""))
	}
	for _, apple := range t.Apples {
		if apple.Taken {
			continue
		}
		w := t.WorldAngle(apple.Angle)
		ax := cx + math.Cos(w)*(radius+appleRadius*scale)
		ay := cy + math.Sin(w)*(radius+appleRadius*scale)
		vector.DrawFilledCircle(screen, float32(ax), float32(ay), float32(appleRadius*scale), config.AppleColor, true)
	}

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), base, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius*0.55), ScaleColor(base, 0.85), true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius*0.12), DarkenColor(base), true)

	// Радиальные трещины показывают вращение
	for i := 0; i < 3; i++ {
		a := t.Rotation + float64(i)*2*math.Pi/3
		x0, y0 := cx+math.Cos(a)*radius*0.2, cy+math.Sin(a)*radius*0.2
		x1, y1 := cx+math.Cos(a)*radius*0.8, cy+math.Sin(a)*radius*0.8
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 3, DarkenColor(base), true)
	}

	rim := DarkenColor(base)
	width := float32(6)
	if t.IsBoss() {
		rim = config.BossBannerColor
		width = 9
	}
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), width, rim, true)
}

func (r *SceneRenderer) drawStuck(screen *ebiten.Image, world, scale float64, skin defs.KnifeSkin) {
	dirX, dirY := math.Cos(world), math.Sin(world)
	rimDist := (config.TargetRadius - knifeEmbed) * scale
	length := config.KnifeLength * scale
	centerDist := rimDist + length/2
	cx := config.TargetCenterX + dirX*centerDist
	cy := config.TargetCenterY + dirY*centerDist
	// Остриё смотрит в центр мишени
	r.drawKnifeShape(screen, cx, cy, world+math.Pi, length, config.KnifeWidth*scale, skin, 1)
}

// DrawStaged рисует нож на позиции броска
func (r *SceneRenderer) DrawStaged(screen *ebiten.Image, k *component.Knife, skin defs.KnifeSkin) {
	if k == nil {
		return
	}
	y := config.KnifeSpawnY + (1-k.Rise)*riseOffset
	r.drawKnifeShape(screen, config.TargetCenterX, y, -math.Pi/2, config.KnifeLength, config.KnifeWidth, skin, 1)
}

// DrawFlying рисует нож в полёте: остриё в Travel пикселях от обода
func (r *SceneRenderer) DrawFlying(screen *ebiten.Image, k *component.Knife, skin defs.KnifeSkin) {
	tipY := config.TargetCenterY + config.TargetRadius + k.Travel
	r.drawKnifeShape(screen, config.TargetCenterX, tipY+config.KnifeLength/2, -math.Pi/2, config.KnifeLength, config.KnifeWidth, skin, 1)
}

// DrawFalling рисует отскочивший нож, который кувыркаясь падает вниз
func (r *SceneRenderer) DrawFalling(screen *ebiten.Image, k *component.Knife, skin defs.KnifeSkin) {
	t := k.Fall
	x := config.TargetCenterX + fallSpeedX*t
	y := config.TargetCenterY + config.TargetRadius + config.KnifeLength/2 + fallGravity*t*t/2
	alpha := 1 - utils.Clamp01(t/fallLifetime)
	r.drawKnifeShape(screen, x, y, -math.Pi/2+fallSpin*t, config.KnifeLength, config.KnifeWidth, skin, alpha)
}

// DrawKnifeIcon рисует нож для меню выбора
func (r *SceneRenderer) DrawKnifeIcon(screen *ebiten.Image, x, y, length float64, skin defs.KnifeSkin) {
	r.drawKnifeShape(screen, x, y, -math.Pi/2, length, length*config.KnifeWidth/config.KnifeLength, skin, 1)
}

// drawKnifeShape рисует нож с центром (cx, cy); angle — направление
// от рукояти к острию.
func (r *SceneRenderer) drawKnifeShape(screen *ebiten.Image, cx, cy, angle, length, width float64, skin defs.KnifeSkin, alpha float64) {
	ax, ay := math.Cos(angle), math.Sin(angle)
	nx, ny := -ay, ax

	tailX, tailY := cx-ax*length/2, cy-ay*length/2
	guardX, guardY := tailX+ax*length*(1-bladeFraction), tailY+ay*length*(1-bladeFraction)
	tipX, tipY := cx+ax*length/2, cy+ay*length/2
	hw := width / 2

	handle := WithAlpha(skin.Handle.RGBA(), alpha)
	blade := WithAlpha(skin.Blade.RGBA(), alpha)

	// Рукоять
	r.fillPolygon(screen, handle,
		tailX+nx*hw*0.8, tailY+ny*hw*0.8,
		guardX+nx*hw*0.8, guardY+ny*hw*0.8,
		guardX-nx*hw*0.8, guardY-ny*hw*0.8,
		tailX-nx*hw*0.8, tailY-ny*hw*0.8,
	)
	// Клинок сужается к острию
	shoulderX, shoulderY := guardX+ax*length*bladeFraction*0.7, guardY+ay*length*bladeFraction*0.7
	r.fillPolygon(screen, blade,
		guardX+nx*hw, guardY+ny*hw,
		shoulderX+nx*hw, shoulderY+ny*hw,
		tipX, tipY,
		shoulderX-nx*hw, shoulderY-ny*hw,
		guardX-nx*hw, guardY-ny*hw,
	)
}

// fillPolygon заливает выпуклый многоугольник веером треугольников
func (r *SceneRenderer) fillPolygon(screen *ebiten.Image, clr color.RGBA, pts ...float64) {
	n := len(pts) / 2
	if n < 3 {
		return
	}
	cr := float32(clr.R) / 0xff
	cg := float32(clr.G) / 0xff
	cb := float32(clr.B) / 0xff
	ca := float32(clr.A) / 0xff

	r.vs = r.vs[:0]
	r.is = r.is[:0]
	for i := 0; i < n; i++ {
		r.vs = append(r.vs, ebiten.Vertex{
			DstX: float32(pts[2*i]), DstY: float32(pts[2*i+1]),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for i := 1; i < n-1; i++ {
		r.is = append(r.is, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(r.vs, r.is, r.fillImg, op)
}
