package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/BinForm/internal/model"
)

// AppConfig stores user preferences applied to new projects.
type AppConfig struct {
	DefaultConfig  model.Config `json:"default_config"`
	RecentProjects []string     `json:"recent_projects"`
}

// DefaultAppConfig returns the configuration used before the user saved one.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultConfig:  model.DefaultConfig(),
		RecentProjects: []string{},
	}
}

// AppConfigPath returns the application config file location.
func AppConfigPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// SaveAppConfig writes the application config, creating directories as
// needed.
func SaveAppConfig(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the application config. A missing file yields the
// defaults, which are saved for next time.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultAppConfig()
			if saveErr := SaveAppConfig(path, cfg); saveErr != nil {
				return cfg, saveErr
			}
			return cfg, nil
		}
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// RememberProject records a project path at the front of the recent list,
// dropping duplicates and keeping at most ten entries.
func (c *AppConfig) RememberProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path && len(recent) < 10 {
			recent = append(recent, p)
		}
	}
	c.RecentProjects = recent
}
