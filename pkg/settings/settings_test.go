package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_Missing(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if s.DefaultDevice != "" {
		t.Errorf("DefaultDevice = %q, want empty", s.DefaultDevice)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.json")
	s := &Settings{DefaultDevice: "edge1", RedisAddr: "127.0.0.1:6379"}
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.DefaultDevice != "edge1" {
		t.Errorf("DefaultDevice = %q, want %q", got.DefaultDevice, "edge1")
	}
	if got.RedisAddr != "127.0.0.1:6379" {
		t.Errorf("RedisAddr = %q", got.RedisAddr)
	}
}
