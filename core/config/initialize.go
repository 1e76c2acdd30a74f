package config

import (
	"fmt"
	"log"

	"github.com/spf13/afero"
)

// Initialize writes the embedded default configuration to path so the user
// has a commented file to edit. An existing file is left untouched.
func Initialize(fs afero.Fs, path string, logger *log.Logger) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("check config: %w", err)
	}
	if exists {
		logger.Printf("%s already exists, leaving it untouched", path)
		return nil
	}
	if err := afero.WriteFile(fs, path, defaultConfigData, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	logger.Printf("wrote %s", path)
	return nil
}
