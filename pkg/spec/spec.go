package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the takeoff file name looked up inside a project directory.
const ProjectFile = "takeoff.yaml"

// Load reads a takeoff from a YAML file.
func Load(path string) (*Takeoff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a takeoff from YAML.
func Parse(data []byte) (*Takeoff, error) {
	var t Takeoff
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}
	return &t, nil
}

// LoadProject loads a takeoff from a project directory.
// It looks for takeoff.yaml in the given directory.
func LoadProject(projectDir string) (*Takeoff, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}
