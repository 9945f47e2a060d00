package config

import (
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func marshal(path string, cfg *Config) ([]byte, error) {
	if isTOML(path) {
		return toml.Marshal(cfg)
	}
	return yaml.Marshal(cfg)
}
