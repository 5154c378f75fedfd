package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// LoadRenderConfig reads a JSON render configuration. Fields missing from the
// file keep their renderer.DefaultConfig values.
func LoadRenderConfig(filename string) (renderer.Config, error) {
	config := renderer.DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if config.OutputFile == "" {
		return config, fmt.Errorf("config file %s: outputFile must not be empty", filename)
	}

	return config, nil
}
