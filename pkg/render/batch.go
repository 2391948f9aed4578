// pkg/render/batch.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxQuads keeps the vertex count inside uint16 indices.
const maxQuads = 65535 / 4

// QuadBatch collects textured, tinted quads that share one source image and
// draws them with a single DrawTriangles call.
type QuadBatch struct {
	source   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewQuadBatch creates a batch sampling from source, usually an atlas image.
func NewQuadBatch(source *ebiten.Image) *QuadBatch {
	return &QuadBatch{source: source}
}

// Len returns the number of queued quads.
func (b *QuadBatch) Len() int {
	return len(b.vertices) / 4
}

// PushRectangle queues a quad with its top-left corner at (x, y) in destination pixels.
func (b *QuadBatch) PushRectangle(x, y, w, h float32, region Region, tint color.RGBA) {
	if b.Len() >= maxQuads {
		// индексы uint16: дальше копить нельзя, старые квады теряются до Flush
		return
	}
	r, g, bl, a := float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255, float32(tint.A)/255
	u0, v0, u1, v1 := region.UV()

	base := uint16(len(b.vertices))
	b.vertices = append(b.vertices,
		ebiten.Vertex{DstX: x, DstY: y, SrcX: u0, SrcY: v0, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
		ebiten.Vertex{DstX: x + w, DstY: y, SrcX: u1, SrcY: v0, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
		ebiten.Vertex{DstX: x, DstY: y + h, SrcX: u0, SrcY: v1, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
		ebiten.Vertex{DstX: x + w, DstY: y + h, SrcX: u1, SrcY: v1, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
	)
	b.indices = append(b.indices, base, base+1, base+2, base+1, base+3, base+2)
}

// PushCenteredRectangle queues a quad centred on (cx, cy).
func (b *QuadBatch) PushCenteredRectangle(cx, cy, w, h float32, region Region, tint color.RGBA) {
	b.PushRectangle(cx-w/2, cy-h/2, w, h, region, tint)
}

// Flush draws every queued quad onto dst and empties the batch.
func (b *QuadBatch) Flush(dst *ebiten.Image) {
	if len(b.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	dst.DrawTriangles(b.vertices, b.indices, b.source, op)
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}
