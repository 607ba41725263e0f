package device

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vyops/vyops/pkg/util"
)

func TestProfileAddr(t *testing.T) {
	p := &Profile{Host: "192.0.2.1"}
	if got := p.Addr(); got != "192.0.2.1:22" {
		t.Errorf("Addr() = %q, want default port 22", got)
	}
	p.Port = 2222
	if got := p.Addr(); got != "192.0.2.1:2222" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s, err := LoadStore(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if len(s.Profiles) != 0 {
		t.Errorf("got %d profiles, want 0", len(s.Profiles))
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "devices.yaml")
	s := &Store{path: path}
	s.Put(Profile{Name: "edge1", Host: "192.0.2.1", Username: "admin", Password: "secret"})
	s.Put(Profile{Name: "edge2", Host: "192.0.2.2", Username: "admin", KeyFile: "/home/op/.ssh/id_ed25519"})
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if !reflect.DeepEqual(got.Profiles, s.Profiles) {
		t.Errorf("profiles = %+v, want %+v", got.Profiles, s.Profiles)
	}
}

func TestStore_PutReplaces(t *testing.T) {
	s := &Store{}
	s.Put(Profile{Name: "edge1", Host: "192.0.2.1"})
	s.Put(Profile{Name: "edge1", Host: "198.51.100.1"})
	if len(s.Profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(s.Profiles))
	}
	p, err := s.Get("edge1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Host != "198.51.100.1" {
		t.Errorf("Host = %q after replace", p.Host)
	}
}

func TestStore_GetUnknown(t *testing.T) {
	s := &Store{}
	if _, err := s.Get("ghost"); !errors.Is(err, util.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStore_Remove(t *testing.T) {
	s := &Store{}
	s.Put(Profile{Name: "edge1"})
	s.Put(Profile{Name: "edge2"})
	if err := s.Remove("edge1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := s.Names(); !reflect.DeepEqual(got, []string{"edge2"}) {
		t.Errorf("Names = %q", got)
	}
	if err := s.Remove("edge1"); !errors.Is(err, util.ErrNotFound) {
		t.Errorf("second Remove err = %v, want ErrNotFound", err)
	}
}
