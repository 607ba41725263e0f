package backup

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/vyops/vyops/pkg/util"
)

// FileSink writes dumps under <dir>/<device>/<timestamp>.cfg.
type FileSink struct {
	Dir string
}

// DefaultBackupDir returns the default backup directory.
func DefaultBackupDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vyops_backups"
	}
	return filepath.Join(home, ".vyops", "backups")
}

// NewFileSink creates a sink rooted at dir, or the default when empty.
func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = DefaultBackupDir()
	}
	return &FileSink{Dir: dir}
}

// Store implements Sink.
func (s *FileSink) Store(_ context.Context, device, config string) (string, error) {
	dir := filepath.Join(s.Dir, util.SanitizeName(device))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, time.Now().UTC().Format("20060102-150405")+".cfg")
	if err := os.WriteFile(path, []byte(config), 0600); err != nil {
		return "", err
	}
	return path, nil
}
