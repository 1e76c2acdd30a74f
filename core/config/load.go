package config

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Default returns the embedded default configuration. It panics on decode
// failure because that can only mean a broken build.
func Default() *Config {
	var out Config
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Load reads the configuration file at path, applying it over the embedded
// defaults. A missing file yields the defaults unchanged.
func Load(fs afero.Fs, path string) (*Config, error) {
	out := Default()

	contents, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return out, nil
}
