// Package project persists part lists, configuration, and packing results as
// JSON documents under the user's .binform directory.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/BinForm/internal/model"
)

// Project ties a named part list, its configuration, and the last packing
// result together for save/load.
type Project struct {
	Name   string            `json:"name"`
	Rects  []model.Rect      `json:"rects"`
	Config model.Config      `json:"config"`
	Result *model.PackResult `json:"result,omitempty"`
}

// New returns an empty project with default configuration.
func New(name string) Project {
	return Project{
		Name:   name,
		Rects:  []model.Rect{},
		Config: model.DefaultConfig(),
	}
}

// DefaultDir returns the directory project and config files live in,
// ~/.binform.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".binform"), nil
}

// Save writes the project to the given JSON file, creating parent
// directories as needed.
func Save(path string, p Project) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from the given JSON file.
func Load(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, err
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, err
	}
	return p, nil
}
