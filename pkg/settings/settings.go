// Package settings manages persistent user settings for the vyops CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences
type Settings struct {
	// DefaultDevice is the device to use when -d is not specified
	DefaultDevice string `json:"default_device,omitempty"`

	// DeviceFile overrides the default device profile file
	DeviceFile string `json:"device_file,omitempty"`

	// BackupDir overrides the default backup directory
	BackupDir string `json:"backup_dir,omitempty"`

	// MarkerFile points to a YAML file with custom error marker lists
	MarkerFile string `json:"marker_file,omitempty"`

	// RedisAddr enables the Redis backup sink when set (host:port)
	RedisAddr string `json:"redis_addr,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vyops_settings.json"
	}
	return filepath.Join(home, ".vyops", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
