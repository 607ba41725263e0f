package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileLogger_LogAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	l, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	defer l.Close()

	now := time.Now().UTC()
	events := []*Event{
		{Timestamp: now.Add(-2 * time.Hour), Device: "edge1", Operation: "interface set", Success: true},
		{Timestamp: now, Device: "edge2", Operation: "route set", Success: false, RolledBack: true},
		{Timestamp: now, Device: "edge1", Operation: "apply change.yaml", Success: true},
	}
	for _, e := range events {
		if err := l.Log(e); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	all, err := l.Query(Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}

	edge1, err := l.Query(Filter{Device: "edge1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(edge1) != 2 {
		t.Errorf("device filter: got %d events, want 2", len(edge1))
	}

	recent, err := l.Query(Filter{Since: now.Add(-time.Hour)})
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Errorf("since filter: got %d events, want 2", len(recent))
	}

	if !recent[0].RolledBack && !recent[1].RolledBack {
		t.Error("rolled-back flag lost in round trip")
	}
}

func TestFileLogger_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	l, err := NewFileLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	if err := l.Log(&Event{Device: "edge1"}); err != nil {
		t.Fatal(err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("this is not json\n")
	f.Close()
	if err := l.Log(&Event{Device: "edge2"}); err != nil {
		t.Fatal(err)
	}

	events, err := l.Query(Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2 (malformed line skipped)", len(events))
	}
}

func TestFileLogger_QueryEmptyLog(t *testing.T) {
	l, err := NewFileLogger(filepath.Join(t.TempDir(), "audit.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	events, err := l.Query(Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}
