package sconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMatchesDocumentedDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, int64(500), cfg.TimeoutMS)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, int64(500), cfg.TimeoutMS)
}
