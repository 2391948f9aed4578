// pkg/render/atlas.go
package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-cave-rhythm/pkg/render/pack"
)

// ErrAtlasFull is returned when a texture no longer fits.
var ErrAtlasFull = errors.New("texture atlas is full")

// atlasPadding separates packed textures so linear filtering does not bleed.
const atlasPadding = 1

// Region is an opaque handle to a rectangle inside an atlas.
type Region struct {
	X, Y, W, H int
}

// UV returns the source rectangle in pixels. Solid regions are sampled at
// their interior so neighbours never leak in.
func (r Region) UV() (u0, v0, u1, v1 float32) {
	return float32(r.X) + 0.5, float32(r.Y) + 0.5, float32(r.X+r.W) - 0.5, float32(r.Y+r.H) - 0.5
}

// Atlas shelf-packs images into one ebiten image.
type Atlas struct {
	image  *ebiten.Image
	packer *pack.Shelf
	white  Region
}

// NewAtlas allocates a size×size atlas with a white swatch for solid quads.
func NewAtlas(size int) *Atlas {
	a := &Atlas{
		image:  ebiten.NewImage(size, size),
		packer: pack.NewShelf(size, size, atlasPadding),
	}
	swatch := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range swatch.Pix {
		swatch.Pix[i] = 0xff
	}
	white, err := a.AddTexture(swatch)
	if err != nil {
		panic("render: atlas too small for the white swatch")
	}
	a.white = white
	return a
}

// Image is the backing image, the source for QuadBatch.
func (a *Atlas) Image() *ebiten.Image {
	return a.image
}

// White is a region that samples as opaque white; tint it for solid fills.
func (a *Atlas) White() Region {
	return a.white
}

// AddTexture copies img into the atlas and returns its region.
func (a *Atlas) AddTexture(img image.Image) (Region, error) {
	b := img.Bounds()
	x, y, ok := a.packer.Place(b.Dx(), b.Dy())
	if !ok {
		return Region{}, ErrAtlasFull
	}
	sub := a.image.SubImage(image.Rect(x, y, x+b.Dx(), y+b.Dy())).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	sub.DrawImage(ebiten.NewImageFromImage(img), op)
	return Region{X: x, Y: y, W: b.Dx(), H: b.Dy()}, nil
}

// Fill is a convenience for a tinted solid rectangle.
func (a *Atlas) Fill(b *QuadBatch, x, y, w, h float32, c color.RGBA) {
	b.PushRectangle(x, y, w, h, a.white, c)
}
