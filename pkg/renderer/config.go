package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background is the radiance returned for rays that escape the scene.
// It blends from Bottom to Top with the ray's vertical direction; equal
// colors give a solid background.
type Background struct {
	Top    core.Vec3 `json:"top"`
	Bottom core.Vec3 `json:"bottom"`
}

// SolidBackground returns a background of a single color
func SolidBackground(color core.Vec3) Background {
	return Background{Top: color, Bottom: color}
}

// Color returns the background radiance seen along direction
func (b Background) Color(direction core.Vec3) core.Vec3 {
	if b.Top == b.Bottom {
		return b.Top
	}

	unitDirection := direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// Config contains rendering configuration
type Config struct {
	ImageWidth      int        `json:"imageWidth"`      // Pixel columns; height is derived from the aspect ratio
	AspectRatio     float64    `json:"aspectRatio"`     // Width over height
	SamplesPerPixel int        `json:"samplesPerPixel"` // Number of rays per pixel
	MaxDepth        int        `json:"maxDepth"`        // Maximum ray bounce depth
	Background      Background `json:"background"`      // Radiance for escaping rays
	OutputDir       string     `json:"outputDir"`       // Directory for RenderToFile, created if missing
	OutputFile      string     `json:"outputFile"`      // File name for RenderToFile
	NumWorkers      int        `json:"numWorkers"`      // Parallel scanline workers (0 = use CPU count)
	Seed            int64      `json:"seed"`            // Base seed; row k samples with Seed+k
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Background: Background{
			Top:    core.NewVec3(0.5, 0.7, 1.0),
			Bottom: core.NewVec3(1.0, 1.0, 1.0),
		},
		OutputDir:  "./output/",
		OutputFile: "image.ppm",
		NumWorkers: 0,
		Seed:       42,
	}
}

// ImageHeight derives the pixel row count: width / aspect, floored, at least 1
func (c Config) ImageHeight() int {
	height := int(float64(c.ImageWidth) / c.AspectRatio)
	if height < 1 {
		return 1
	}
	return height
}
