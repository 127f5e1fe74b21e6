package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the directory so it
// can be edited. It refuses to clobber an existing file.
func Initialize(fs afero.Fs, path string, logger *log.Logger) error {
	toCreate := filepath.Join(path, ConfigurationName)

	exists, err := afero.Exists(fs, toCreate)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s already exists", toCreate)
	}

	if err := afero.WriteFile(fs, toCreate, defaultConfigData, 0644); err != nil {
		return err
	}

	logger.Printf("wrote %s", toCreate)
	return nil
}
