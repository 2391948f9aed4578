package level

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"go-cave-rhythm/internal/utils"

	_ "golang.org/x/image/bmp"
)

// TileFromRGB maps an exact pixel colour to a tile. Unknown colours fall back to floor.
func TileFromRGB(r, g, b uint8) Tile {
	switch {
	case r == 0 && g == 0 && b == 255:
		return TileFloor
	case r == 0 && g == 255 && b == 0:
		return TileWall
	case r == 255 && g == 0 && b == 0:
		return TilePillar
	}
	return TileFloor
}

// FromImage classifies every pixel. The image's bottom row becomes tile row 0.
func FromImage(img image.Image) (width, height int, tiles []Tile) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	tiles = make([]Tile, width*height)
	for py := b.Min.Y; py < b.Max.Y; py++ {
		ty := height - 1 - (py - b.Min.Y)
		for px := b.Min.X; px < b.Max.X; px++ {
			r, g, bl, _ := img.At(px, py).RGBA()
			tiles[ty*width+(px-b.Min.X)] = TileFromRGB(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return width, height, tiles
}

// LoadImage decodes a PNG or BMP level layout.
func LoadImage(path string) (width, height int, tiles []Tile, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to open level image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to decode level image %s: %w", path, err)
	}
	width, height, tiles = FromImage(img)
	if width < 2 || height < 2 {
		return 0, 0, nil, fmt.Errorf("level image %s is %dx%d, need at least 2x2", path, width, height)
	}
	return width, height, tiles, nil
}

// Load reads a level image and places the player, monsters and treasure on it.
func (l *Level) Load(path string, rng utils.Rand, opts GenOptions) error {
	width, height, tiles, err := LoadImage(path)
	if err != nil {
		return err
	}
	ents, err := Populate(tiles, width, height, rng, opts)
	if err != nil {
		return fmt.Errorf("populate %s: %w", path, err)
	}
	l.Replace(width, height, tiles, ents)
	return nil
}
