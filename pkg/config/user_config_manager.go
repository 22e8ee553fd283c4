// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
)

// UserConfigManager loads and saves the configuration file in the user config directory.
type UserConfigManager interface {
	Load() (Config, error)
	Save(Config) error
}

func NewUserConfigManager(fileConfigManager FileConfigManager) UserConfigManager {
	return &userConfigManager{
		manager: fileConfigManager,
	}
}

type userConfigManager struct {
	manager FileConfigManager
}

// GetUserConfigFilePath returns the path of config.json in the user config directory.
func GetUserConfigFilePath() (string, error) {
	configDir, err := GetUserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed getting user config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the user configuration. A missing file yields an empty configuration.
func (m *userConfigManager) Load() (Config, error) {
	configFilePath, err := GetUserConfigFilePath()
	if err != nil {
		return nil, err
	}

	cfg, err := m.manager.Load(configFilePath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no user configuration at %s, using defaults", configFilePath)
		return NewEmptyConfig(), nil
	} else if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (m *userConfigManager) Save(c Config) error {
	configFilePath, err := GetUserConfigFilePath()
	if err != nil {
		return err
	}

	return m.manager.Save(c, configFilePath)
}
