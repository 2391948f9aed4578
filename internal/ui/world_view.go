// internal/ui/world_view.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/level"
	"go-cave-rhythm/internal/ui/layout"
	"go-cave-rhythm/pkg/geom"
	"go-cave-rhythm/pkg/render"
)

const (
	atlasSize = 256
	discSize  = 32
)

// WorldView draws the tile grid and entities of a level through one quad batch.
type WorldView struct {
	atlas *render.Atlas
	batch *render.QuadBatch
	disc  render.Region
}

// NewWorldView builds the atlas: the white swatch for tiles plus a disc
// sprite for round entities.
func NewWorldView() *WorldView {
	atlas := render.NewAtlas(atlasSize)
	disc, err := atlas.AddTexture(discImage(discSize))
	if err != nil {
		panic(err)
	}
	return &WorldView{
		atlas: atlas,
		batch: render.NewQuadBatch(atlas.Image()),
		disc:  disc,
	}
}

// discImage is a white filled circle on transparent.
func discImage(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

// Viewport returns the screen mapping centred on camera.
func Viewport(camera geom.Vec2) layout.Viewport {
	return layout.Viewport{
		Width:      config.ScreenWidth,
		Height:     config.ScreenHeight,
		TilePixels: config.TilePixels,
		Camera:     camera,
	}
}

func tileColor(t level.Tile) color.RGBA {
	switch t {
	case level.TileWall:
		return config.WallColor
	case level.TilePillar:
		return config.PillarColor
	default:
		return config.FloorColor
	}
}

// Draw renders the visible part of lvl.
func (w *WorldView) Draw(screen *ebiten.Image, lvl *level.Level, camera geom.Vec2) {
	screen.Fill(config.BackgroundColor)
	vp := Viewport(camera)

	x0, y0, x1, y1 := vp.VisibleTiles(lvl.Width, lvl.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sx, sy, sw, sh := vp.RectToScreen(geom.Cell(x, y))
			w.atlas.Fill(w.batch, float32(sx), float32(sy), float32(sw), float32(sh), tileColor(lvl.TileAt(x, y)))
		}
	}

	for _, e := range lvl.Entities.All() {
		w.pushEntity(vp, e)
	}
	w.batch.Flush(screen)
}

func (w *WorldView) pushEntity(vp layout.Viewport, e *entity.Entity) {
	tint := e.Render.Color
	if e.Render.Flash > 0 {
		tint = render.MixColor(tint, color.RGBA{255, 255, 255, 255}, e.Render.Flash/config.DamageFlashDuration)
	}
	cx, cy := vp.WorldToScreen(e.Position)
	pw := float32(e.Size.X * vp.TilePixels)
	ph := float32(e.Size.Y * vp.TilePixels)

	region := w.disc
	if e.Brain == component.BrainPlayer || e.Brain == component.BrainTreasure {
		region = w.atlas.White()
	}
	if e.Brain == component.BrainPlayer {
		// тёмная рамка, чтобы игрок читался на любом полу
		w.batch.PushCenteredRectangle(float32(cx), float32(cy), pw+4, ph+4, w.atlas.White(), render.DarkenColor(tint))
	}
	w.batch.PushCenteredRectangle(float32(cx), float32(cy), pw, ph, region, tint)
}

// DrawMarker queues a disc of the given world size at a world position.
// Used for the combat projectile.
func (w *WorldView) DrawMarker(screen *ebiten.Image, camera geom.Vec2, pos geom.Vec2, size float64, tint color.RGBA) {
	vp := Viewport(camera)
	cx, cy := vp.WorldToScreen(pos)
	px := float32(size * vp.TilePixels)
	w.batch.PushCenteredRectangle(float32(cx), float32(cy), px, px, w.disc, tint)
	w.batch.Flush(screen)
}
