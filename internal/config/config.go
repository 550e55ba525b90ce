package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Geometry struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

type Config struct {
	FPS     int    `yaml:"fps"`
	Driver  string `yaml:"driver,omitempty"` // "term" | "sim" | "auto"
	Scene   string `yaml:"scene"`            // body scene: "logo" | "testcard"
	Preset  string `yaml:"preset"`           // scene preset, e.g. palette name
	Message string `yaml:"message"`          // banner text; empty keeps the default

	Fallback Geometry `yaml:"fallback,omitempty"` // used off a tty

	Addr string `yaml:"addr,omitempty"` // preview listen address; empty disables
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
