// Package device manages device profiles and remote access to the
// router CLI, both one-shot commands and interactive shells.
package device

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vyops/vyops/pkg/util"
)

// Profile holds the connection parameters for one device. The engine
// treats these as opaque; validation of reachability happens on dial.
type Profile struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port,omitempty"`
	Username string `yaml:"username"`
	Password string `yaml:"password,omitempty"`
	KeyFile  string `yaml:"key_file,omitempty"`
}

// Addr returns host:port, defaulting to port 22.
func (p *Profile) Addr() string {
	port := p.Port
	if port == 0 {
		port = 22
	}
	return fmt.Sprintf("%s:%d", p.Host, port)
}

// Store is the on-disk device profile collection.
type Store struct {
	path     string
	Profiles []Profile `yaml:"devices"`
}

// DefaultStorePath returns the default profile file location.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vyops_devices.yaml"
	}
	return filepath.Join(home, ".vyops", "devices.yaml")
}

// LoadStore reads profiles from path. A missing file yields an empty store.
func LoadStore(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Save writes the store back to its path, creating the directory if needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Get returns the named profile.
func (s *Store) Get(name string) (*Profile, error) {
	for i := range s.Profiles {
		if s.Profiles[i].Name == name {
			return &s.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("device %q: %w", name, util.ErrNotFound)
}

// Put adds or replaces a profile by name.
func (s *Store) Put(p Profile) {
	for i := range s.Profiles {
		if s.Profiles[i].Name == p.Name {
			s.Profiles[i] = p
			return
		}
	}
	s.Profiles = append(s.Profiles, p)
}

// Remove deletes a profile by name.
func (s *Store) Remove(name string) error {
	for i := range s.Profiles {
		if s.Profiles[i].Name == name {
			s.Profiles = append(s.Profiles[:i], s.Profiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("device %q: %w", name, util.ErrNotFound)
}

// Names lists profile names in store order.
func (s *Store) Names() []string {
	names := make([]string, len(s.Profiles))
	for i := range s.Profiles {
		names[i] = s.Profiles[i].Name
	}
	return names
}
