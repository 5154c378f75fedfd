package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// debugColor marks surfaces whose image failed to load
var debugColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a decoded 8-bit RGB image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []uint8 // Row-major RGB triples: Pixels[3*(y*Width + x)]
}

// NewImageTexture creates a new image texture from packed RGB bytes
func NewImageTexture(width, height int, pixels []uint8) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UV is clamped to [0, 1]; an empty texture returns cyan.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t == nil || t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < 3*t.Width*t.Height {
		return debugColor
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := 1.0 - unit.Clamp(uv.Y) // Flip V to image coordinates

	x := clampIndex(int(u*float64(t.Width)), t.Width)
	y := clampIndex(int(v*float64(t.Height)), t.Height)

	offset := 3 * (y*t.Width + x)
	const colorScale = 1.0 / 255.0
	return core.NewVec3(
		colorScale*float64(t.Pixels[offset]),
		colorScale*float64(t.Pixels[offset+1]),
		colorScale*float64(t.Pixels[offset+2]),
	)
}

// clampIndex limits i to [0, n)
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
