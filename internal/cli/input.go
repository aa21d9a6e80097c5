package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wattwise/wattwise/internal/exergy"
	"github.com/wattwise/wattwise/internal/tea"
)

// loadAssumptions reads a YAML assumptions file on top of the documented
// defaults, so file entries win and absent fields keep their defaults.
func loadAssumptions(path string) (tea.ProjectAssumptions, error) {
	assumptions := tea.DefaultAssumptions()

	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied by design
	if err != nil {
		return assumptions, fmt.Errorf("reading assumptions %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &assumptions); err != nil {
		return assumptions, fmt.Errorf("parsing assumptions %s: %w", path, err)
	}
	return assumptions, nil
}

// loadProcessSteps reads a YAML file holding an ordered list of process
// steps for component-level exergy decomposition.
func loadProcessSteps(path string) ([]exergy.ProcessStep, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied by design
	if err != nil {
		return nil, fmt.Errorf("reading process steps %s: %w", path, err)
	}

	var steps []exergy.ProcessStep
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parsing process steps %s: %w", path, err)
	}
	return steps, nil
}

// technologiesFile is the on-disk shape for exergy compare input.
type technologiesFile struct {
	Technologies []exergy.Technology `yaml:"technologies"`
}

// loadTechnologies reads a YAML technology list. Accepts either a bare list
// or a document with a top-level "technologies" key.
func loadTechnologies(path string) ([]exergy.Technology, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied by design
	if err != nil {
		return nil, fmt.Errorf("reading technologies %s: %w", path, err)
	}

	var bare []exergy.Technology
	if err := yaml.Unmarshal(data, &bare); err == nil && len(bare) > 0 {
		return bare, nil
	}

	var file technologiesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing technologies %s: %w", path, err)
	}
	if len(file.Technologies) == 0 {
		return nil, fmt.Errorf("no technologies found in %s", path)
	}
	return file.Technologies, nil
}

// parseVariations parses a comma-separated percentage list like
// "-20,-10,0,10,20".
func parseVariations(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	variations := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid variation %q: %w", part, err)
		}
		variations = append(variations, v)
	}
	if len(variations) == 0 {
		return nil, fmt.Errorf("no variations in %q", s)
	}
	return variations, nil
}
