package sink

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestFileSinkWritesNewlineDelimitedRecords(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := NewFileSink(fs, "/logs/out.jsonl")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	if err := s.Write(context.Background(), `{"type":"idle"}`); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Write(context.Background(), `{"data":"x"}`); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := afero.ReadFile(fs, "/logs/out.jsonl")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "{\"type\":\"idle\"}\n{\"data\":\"x\"}\n"
	if string(data) != want {
		t.Fatalf("expected %q, got %q", want, string(data))
	}
}

func TestRunDrainsChannelUntilClosed(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := NewFileSink(fs, "/logs/out.jsonl")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	ch := make(chan string, 2)
	ch <- "a"
	ch <- "b"
	close(ch)

	done := make(chan struct{})
	go func() {
		Run(context.Background(), ch, s, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after channel closed")
	}

	data, _ := afero.ReadFile(fs, "/logs/out.jsonl")
	if string(data) != "a\nb\n" {
		t.Fatalf("expected %q, got %q", "a\nb\n", string(data))
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := NewFileSink(fs, "/logs/out.jsonl")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan string)

	done := make(chan struct{})
	go func() {
		Run(ctx, ch, s, nil)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancel")
	}
}
