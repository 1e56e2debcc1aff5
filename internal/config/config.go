// Package config holds the viper configuration singleton for cwf.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var v *viper.Viper

// Initialize sets up the viper configuration singleton.
// Should be called once at application startup.
func Initialize() error {
	v = viper.New()
	v.SetConfigType("yaml")

	// Precedence: project .cwf/config.yaml (walking up from CWD) >
	// ~/.config/cwf/config.yaml.
	configFileSet := false

	if cwd, err := os.Getwd(); err == nil {
		for dir := cwd; dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
			configPath := filepath.Join(dir, ".cwf", "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
				break
			}
		}
	}

	if !configFileSet {
		if configDir, err := os.UserConfigDir(); err == nil {
			configPath := filepath.Join(configDir, "cwf", "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
			}
		}
	}

	// Environment variables take precedence over the config file.
	// E.g. CWF_JSON, CWF_RULES, CWF_OUTPUT_DIR.
	v.SetEnvPrefix("CWF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("json", false)
	v.SetDefault("quiet", false)
	v.SetDefault("rules", "")
	v.SetDefault("output-dir", "content")
	v.SetDefault("catalog-dir", "catalogs")
	v.SetDefault("data-dir", "data")

	// External converter settings.
	v.SetDefault("converter.command", "trestle")
	v.SetDefault("converter.task", "csv-to-oscal-mc")
	v.SetDefault("converter.min-version", "")

	// Watch settings.
	v.SetDefault("watch.debounce", "500ms")

	// Review (AI-drafted notes) settings.
	v.SetDefault("review.model", "claude-sonnet-4-5")
	v.SetDefault("review.max-rows", 20)

	if configFileSet {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// ensure guards against commands that run before Initialize in tests.
func ensure() *viper.Viper {
	if v == nil {
		_ = Initialize()
	}
	return v
}

// GetString returns a string config value.
func GetString(key string) string {
	return ensure().GetString(key)
}

// GetBool returns a boolean config value.
func GetBool(key string) bool {
	return ensure().GetBool(key)
}

// GetInt returns an integer config value.
func GetInt(key string) int {
	return ensure().GetInt(key)
}

// Set overrides a config value (used by flag binding).
func Set(key string, value interface{}) {
	ensure().Set(key, value)
}

// ConfigFileUsed returns the path of the loaded config file, if any.
func ConfigFileUsed() string {
	return ensure().ConfigFileUsed()
}
