package config

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/footprint-tools/brig/internal/paths"
)

const fileHeader = "# brig configuration\n# Edit values below or use: brig config set <key> <value>\n\n"

// WriteFile atomically replaces the configuration file with values.
func WriteFile(values map[string]string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".config.tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(0600); err != nil {
		return err
	}

	writer := bufio.NewWriter(tmpFile)

	if _, err := writer.WriteString(fileHeader); err != nil {
		return err
	}
	if err := toml.NewEncoder(writer).Encode(values); err != nil {
		return err
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		return err
	}

	success = true
	return nil
}
