package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/ppm"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ErrNotInitialized is returned when rendering before Initialize succeeded
var ErrNotInitialized = errors.New("render session not initialized")

// openSessions counts sessions that have not been closed
var openSessions atomic.Int32

// Session renders a World through a camera. Only one session is meant to be
// open at a time; opening a second one logs a warning.
type Session struct {
	world  *geometry.World
	config Config
	logger core.Logger

	camera     CameraView
	viewport   *Viewport
	bvh        *geometry.BVH
	integrator integrator.Integrator
	width      int
	height     int

	stats  RenderStats
	closed bool
}

// NewSession creates a render session over world. Close it when done.
func NewSession(world *geometry.World, config Config, logger core.Logger) *Session {
	if logger == nil {
		logger = core.NopLogger{}
	}

	if openSessions.Add(1) > 1 {
		logger.Printf("Warning: a render session already exists; only one should be open at a time\n")
	}

	if config.SamplesPerPixel < 1 {
		logger.Printf("Warning: samples per pixel %d is below 1, using 1\n", config.SamplesPerPixel)
		config.SamplesPerPixel = 1
	}

	return &Session{
		world:      world,
		config:     config,
		logger:     logger,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
	}
}

// Close releases the session
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	openSessions.Add(-1)
}

// Config returns the effective configuration
func (s *Session) Config() Config {
	return s.config
}

// Width returns the image width fixed by Initialize
func (s *Session) Width() int {
	return s.width
}

// Height returns the image height fixed by Initialize
func (s *Session) Height() int {
	return s.height
}

// Stats returns statistics from the last completed render
func (s *Session) Stats() RenderStats {
	return s.stats
}

// Initialize fixes the image size and viewport, refreshes anchored surfaces
// and builds the BVH over the directly registered surfaces.
func (s *Session) Initialize(camera CameraView) error {
	if camera == nil {
		return errors.New("initialize: camera is nil")
	}
	if s.config.ImageWidth < 1 {
		return fmt.Errorf("initialize: image width must be at least 1, got %d", s.config.ImageWidth)
	}
	if !(s.config.AspectRatio > 0) || math.IsInf(s.config.AspectRatio, 0) {
		return fmt.Errorf("initialize: aspect ratio must be positive and finite, got %g", s.config.AspectRatio)
	}

	s.camera = camera
	s.width = s.config.ImageWidth
	s.height = s.config.ImageHeight()
	s.viewport = NewViewport(camera, s.width, s.height)

	s.world.Recompute()
	s.bvh = geometry.NewBVH(s.world, s.world.Direct())

	s.logger.Printf("Initialized %dx%d render over %d surfaces\n", s.width, s.height, s.bvh.Len())
	return nil
}

// Render traces every pixel and returns the 8-bit image. Scanlines are
// rendered in parallel; row k draws its samples from a generator seeded with
// Config.Seed + k, so the result does not depend on scheduling.
func (s *Session) Render() (*image.RGBA, error) {
	if s.viewport == nil {
		return nil, ErrNotInitialized
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	origin := s.camera.Position()

	s.logger.Printf("Rendering %dx%d at %d spp, max depth %d (using %d workers)...\n",
		s.width, s.height, s.config.SamplesPerPixel, s.config.MaxDepth, min(resolveWorkers(s.config.NumWorkers), s.height))

	start := time.Now()
	var rowsDone atomic.Int32
	workers := renderPool.Run(s.config.NumWorkers, s.height, func(row int) {
		sampler := core.NewSeededSampler(s.config.Seed + int64(row))
		s.renderRow(img, row, origin, sampler)

		if done := rowsDone.Add(1); int(done)%progressInterval(s.height) == 0 {
			s.logger.Printf("Scanlines remaining: %d\n", s.height-int(done))
		}
	})

	s.stats = RenderStats{
		Width:        s.width,
		Height:       s.height,
		TotalPixels:  s.width * s.height,
		TotalSamples: s.width * s.height * s.config.SamplesPerPixel,
		Workers:      workers,
		Duration:     time.Since(start),
	}
	s.logger.Printf("Done in %v (%.0f samples/sec)\n", s.stats.Duration, s.stats.SamplesPerSecond())

	return img, nil
}

// progressInterval reports progress about ten times per render
func progressInterval(height int) int {
	return max(1, height/10)
}

// renderRow writes one scanline. It touches only that row's pixels.
func (s *Session) renderRow(img *image.RGBA, row int, origin core.Vec3, sampler core.Sampler) {
	scale := 1.0 / float64(s.config.SamplesPerPixel)
	for i := 0; i < s.width; i++ {
		var pixelColor core.Vec3
		for sample := 0; sample < s.config.SamplesPerPixel; sample++ {
			ray := s.viewport.GetRay(origin, i, row, sampler)
			pixelColor = pixelColor.Add(s.integrator.RayColor(ray, s, sampler))
		}
		img.SetRGBA(i, row, colorToRGBA(pixelColor.Multiply(scale)))
	}
}

// Hit finds the closest surface along ray through the BVH
func (s *Session) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	return s.bvh.Hit(s.world, ray, rayT, sampler)
}

// Background returns the configured background radiance
func (s *Session) Background(direction core.Vec3) core.Vec3 {
	return s.config.Background.Color(direction)
}

// colorToRGBA applies gamma 2 and quantizes each channel to [0, 255]
func colorToRGBA(c core.Vec3) color.RGBA {
	c = c.GammaCorrect(2.0)
	intensity := core.NewInterval(0, 0.999)
	return color.RGBA{
		R: channelToByte(intensity, c.X),
		G: channelToByte(intensity, c.Y),
		B: channelToByte(intensity, c.Z),
		A: 255,
	}
}

func channelToByte(intensity core.Interval, x float64) uint8 {
	if math.IsNaN(x) {
		x = 0
	}
	return uint8(256 * intensity.Clamp(x))
}

// RenderToFile renders and writes a P3 image to OutputDir/OutputFile,
// creating the directory if needed. It returns the written path.
func (s *Session) RenderToFile() (string, error) {
	img, err := s.Render()
	if err != nil {
		return "", err
	}
	return s.WriteImage(img)
}

// WriteImage encodes img as PPM to OutputDir/OutputFile, creating the
// directory if needed, and returns the written path.
func (s *Session) WriteImage(img image.Image) (string, error) {
	if err := os.MkdirAll(s.config.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.config.OutputDir, s.config.OutputFile)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	if err := ppm.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close output file: %w", err)
	}

	s.logger.Printf("Wrote %s\n", path)
	return path, nil
}
