package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scenegraph"
)

// DefaultEarthTexture is the image wrapped around the globe in the textures and final scenes
const DefaultEarthTexture = "assets/earthmap.jpg"

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  *geometry.World
	Camera *scenegraph.Camera
	Config renderer.Config // Suggested render settings for this scene
}

// Options controls how built-in scenes are assembled
type Options struct {
	TexturePath string      // Image for textured globes; DefaultEarthTexture when empty
	Logger      core.Logger // Receives texture load warnings; may be nil
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by NewScene
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"`
}

type builder func(options Options) *Scene

type entry struct {
	description string
	build       builder
}

var builtInScenes = map[string]entry{
	"simple":        {"Sphere resting on a large ground sphere", NewSimpleScene},
	"spheres":       {"Field of random diffuse, metal and glass spheres", NewSpheresScene},
	"cornell":       {"Cornell box with two rotated boxes", NewCornellScene},
	"cornell-smoke": {"Cornell box with smoke and fog filled boxes", NewCornellSmokeScene},
	"textures":      {"Checker ground, marble sphere and textured globe", NewTexturesScene},
	"final":         {"Grouped boxes, media, image and noise textures", NewFinalScene},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for id, e := range builtInScenes {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: e.description,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewScene builds the built-in scene with the given ID
func NewScene(id string, options Options) (*Scene, error) {
	e, ok := builtInScenes[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %q", id)
	}
	s := e.build(options)
	s.Name = id
	return s, nil
}

// newScene creates an empty scene with the default render configuration
func newScene(camera *scenegraph.Camera) *Scene {
	return &Scene{
		World:  geometry.NewWorld(),
		Camera: camera,
		Config: renderer.DefaultConfig(),
	}
}

// loadTexture loads an image texture, falling back to an empty texture that
// renders cyan when the file cannot be read.
func loadTexture(options Options) material.ColorSource {
	path := options.TexturePath
	if path == "" {
		path = DefaultEarthTexture
	}

	texture, err := loaders.LoadImageTexture(path)
	if err != nil {
		logger := options.Logger
		if logger == nil {
			logger = core.NopLogger{}
		}
		logger.Printf("Warning: %v, using fallback texture\n", err)
		return material.NewImageTexture(0, 0, nil)
	}
	return texture
}

// titleCase converts an identifier to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
