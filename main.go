package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// cliOptions holds the parsed command line
type cliOptions struct {
	sceneName  string
	configPath string
	texture    string
	outPath    string
	writePNG   bool
	width      int
	spp        int
	depth      int
	workers    int
	seed       int64
	set        map[string]bool // Flags given explicitly on the command line
}

func main() {
	opts := cliOptions{set: make(map[string]bool)}
	flag.StringVar(&opts.sceneName, "scene", "simple", "Scene to render (see -list)")
	flag.StringVar(&opts.configPath, "config", "", "JSON render config; replaces the scene's settings")
	flag.StringVar(&opts.texture, "texture", scene.DefaultEarthTexture, "Image used by textured scenes")
	flag.StringVar(&opts.outPath, "out", "", "Output PPM path (default <outputDir>/<scene>.ppm)")
	flag.BoolVar(&opts.writePNG, "png", false, "Also write a PNG next to the PPM")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels")
	flag.IntVar(&opts.spp, "spp", 0, "Samples per pixel")
	flag.IntVar(&opts.depth, "depth", 0, "Maximum bounce depth")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto)")
	flag.Int64Var(&opts.seed, "seed", 0, "Base random seed")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		return
	}
	if *list {
		printScenes()
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-14s %s\n", info.ID, info.Description)
	}
}

func run(opts cliOptions) error {
	logger := renderer.NewDefaultLogger()

	selected, err := createScene(opts.sceneName, scene.Options{TexturePath: opts.texture, Logger: logger})
	if err != nil {
		return err
	}

	config, err := buildConfig(selected, opts)
	if err != nil {
		return err
	}

	session := renderer.NewSession(selected.World, config, logger)
	defer session.Close()

	if err := session.Initialize(selected.Camera); err != nil {
		return err
	}

	fmt.Printf("Rendering %s at %dx%d, %d spp...\n", selected.Name, session.Width(), session.Height(), config.SamplesPerPixel)
	startTime := time.Now()

	img, err := session.Render()
	if err != nil {
		return err
	}
	path, err := session.WriteImage(img)
	if err != nil {
		return err
	}

	stats := session.Stats()
	fmt.Printf("Render completed in %v (%.0f samples/s)\n", time.Since(startTime), stats.SamplesPerSecond())
	fmt.Printf("Render saved as %s\n", path)

	if opts.writePNG {
		pngPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
		if err := savePNG(pngPath, img); err != nil {
			return err
		}
		fmt.Printf("PNG saved as %s\n", pngPath)
	}
	return nil
}

// createScene builds the named built-in scene
func createScene(name string, options scene.Options) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name is required")
	}
	return scene.NewScene(name, options)
}

// buildConfig starts from the scene's settings, swaps in a config file when
// given and applies explicitly set flags last.
func buildConfig(s *scene.Scene, opts cliOptions) (renderer.Config, error) {
	config := s.Config
	config.OutputFile = s.Name + ".ppm"

	if opts.configPath != "" {
		loaded, err := loaders.LoadRenderConfig(opts.configPath)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	if opts.set["width"] {
		config.ImageWidth = opts.width
	}
	if opts.set["spp"] {
		config.SamplesPerPixel = opts.spp
	}
	if opts.set["depth"] {
		config.MaxDepth = opts.depth
	}
	if opts.set["workers"] {
		config.NumWorkers = opts.workers
	}
	if opts.set["seed"] {
		config.Seed = opts.seed
	}
	if opts.outPath != "" {
		config.OutputDir, config.OutputFile = filepath.Split(opts.outPath)
		if config.OutputDir == "" {
			config.OutputDir = "."
		}
	}
	return config, nil
}

func savePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return nil
}
