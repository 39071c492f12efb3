package audit

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestLogger_LogAndEvents(t *testing.T) {
	logger := NewLogger(filepath.Join(t.TempDir(), "guard.jsonl"))

	now := time.Now().Truncate(time.Millisecond)

	events := []Event{
		{Timestamp: now, Type: EventEnable, Details: "allow_data_hosts=false"},
		{Timestamp: now.Add(time.Second), Type: EventBlocked, Op: "create_connection", Host: "www.python.org", Address: "www.python.org:80"},
		{Timestamp: now.Add(2 * time.Second), Type: EventDisable},
	}

	for _, e := range events {
		if err := logger.Log(e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	result, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != len(events) {
		t.Fatalf("got %d events, want %d", len(result), len(events))
	}

	for i, e := range result {
		if e.Type != events[i].Type {
			t.Errorf("event %d: type = %q, want %q", i, e.Type, events[i].Type)
		}
		if e.Host != events[i].Host || e.Address != events[i].Address || e.Op != events[i].Op {
			t.Errorf("event %d: got %+v, want %+v", i, e, events[i])
		}
		if !e.Timestamp.Equal(events[i].Timestamp) {
			t.Errorf("event %d: timestamp = %v, want %v", i, e.Timestamp, events[i].Timestamp)
		}
	}
}

func TestLogger_EventsMissingFile(t *testing.T) {
	logger := NewLogger(filepath.Join(t.TempDir(), "missing.jsonl"))

	result, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("got %d events, want 0", len(result))
	}
}

func TestLogger_LogEventSetsTimestamp(t *testing.T) {
	logger := NewLogger(filepath.Join(t.TempDir(), "nested", "dir", "guard.jsonl"))

	before := time.Now()
	if err := logger.LogEvent(EventEnable, "verbose"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	result, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("got %d events, want 1", len(result))
	}
	if result[0].Timestamp.Before(before.Add(-time.Second)) {
		t.Errorf("timestamp %v not set to now", result[0].Timestamp)
	}
	if result[0].Details != "verbose" {
		t.Errorf("details = %q, want %q", result[0].Details, "verbose")
	}
}

func TestLogger_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guard.jsonl")
	content := `{"type":"enable","timestamp":"2024-01-01T00:00:00Z"}
not json

{"type":"disable","timestamp":"2024-01-01T00:00:01Z"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := NewLogger(path).Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("got %d events, want 2", len(result))
	}
	if result[0].Type != EventEnable || result[1].Type != EventDisable {
		t.Errorf("unexpected events: %+v", result)
	}
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	logger := NewLogger(filepath.Join(t.TempDir(), "guard.jsonl"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = logger.Log(Event{Type: EventBlocked, Host: "example.com"})
		}()
	}
	wg.Wait()

	result, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(result) != 20 {
		t.Errorf("got %d events, want 20", len(result))
	}
}

func TestLogger_Remove(t *testing.T) {
	logger := NewLogger(filepath.Join(t.TempDir(), "guard.jsonl"))

	if err := logger.LogEvent(EventEnable, ""); err != nil {
		t.Fatal(err)
	}
	if err := logger.Remove(); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(logger.Path()); !os.IsNotExist(err) {
		t.Error("audit log should be removed")
	}

	// Removing again is not an error
	if err := logger.Remove(); err != nil {
		t.Errorf("second Remove failed: %v", err)
	}
}
