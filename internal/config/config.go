package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tallied-dev/tallied/internal/model"
)

// Config represents the top-level tallied.yaml configuration.
type Config struct {
	Report     ReportConfig `yaml:"report"`
	Categories []Category   `yaml:"categories,omitempty"`
}

// ReportConfig controls report rendering defaults.
type ReportConfig struct {
	RecentLimit    int  `yaml:"recent_limit"`
	SortCategories bool `yaml:"sort_categories"`
}

// Category is one catalog entry in tallied.yaml.
type Category struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Icon string `yaml:"icon,omitempty"`
}

// Load reads a tallied.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			RecentLimit:    5,
			SortCategories: false,
		},
	}
}

// Catalog converts the configured categories to model form.
func (c *Config) Catalog() []model.Category {
	cats := make([]model.Category, 0, len(c.Categories))
	for _, cc := range c.Categories {
		cats = append(cats, model.Category{
			ID:   cc.ID,
			Name: cc.Name,
			Type: model.CategoryType(cc.Type),
			Icon: cc.Icon,
		})
	}
	return cats
}

// CatalogConfig converts model categories into config form, for writing
// a catalog into tallied.yaml.
func CatalogConfig(cats []model.Category) []Category {
	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, Category{
			ID:   c.ID,
			Name: c.Name,
			Type: string(c.Type),
			Icon: c.Icon,
		})
	}
	return out
}
