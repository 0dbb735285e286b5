package stalklog

import "testing"

func TestNewDefaultsToInfoLevel(t *testing.T) {
	logger, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.GetLevel().String() != "info" {
		t.Fatalf("expected info level, got %s", logger.GetLevel())
	}
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "not-a-level"})
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestNewHonorsConfiguredLevel(t *testing.T) {
	logger, err := New(Config{Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.GetLevel().String() != "debug" {
		t.Fatalf("expected debug level, got %s", logger.GetLevel())
	}
}
