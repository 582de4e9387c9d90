package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/svut"
	projectConfigDir = ".svut"
	configFileName   = "config.yaml"
)

// LoadFileConfig loads the svut configuration by layering default, user, and
// project settings. Missing files are not an error; a file that exists but
// fails to parse is.
func LoadFileConfig() (FileConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultFileConfig()

	// 2. Layer the user-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return FileConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Layer the project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		// Log this error but don't fail; project config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return FileConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a FileConfig from a YAML file.
func loadConfigFromFile(filePath string) (FileConfig, error) {
	var config FileConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return FileConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return FileConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only fields the
// overlay actually sets override the base.
func mergeConfigs(base, overlay FileConfig) FileConfig {
	merged := base

	if overlay.Simulator != "" {
		merged.Simulator = overlay.Simulator
	}
	if len(overlay.Manifests) > 0 {
		merged.Manifests = overlay.Manifests
	}
	if len(overlay.Includes) > 0 {
		merged.Includes = overlay.Includes
	}
	if overlay.Defines != "" {
		merged.Defines = overlay.Defines
	}
	if overlay.VPI != "" {
		merged.VPI = overlay.VPI
	}
	if overlay.Main != "" {
		merged.Main = overlay.Main
	}
	if overlay.NoSplash {
		merged.NoSplash = true
	}

	return merged
}
