package logger

import (
	"path/filepath"
	"phone_addiction_backend/internal/config"
	"testing"

	"go.uber.org/zap"
)

func TestSetMode(t *testing.T) {
	SetMode("debug")
	if Level() != zap.DebugLevel {
		t.Fatalf("Level() = %v, want debug", Level())
	}
	SetMode("release")
	if Level() != zap.InfoLevel {
		t.Fatalf("Level() = %v, want info", Level())
	}
}

func TestInitLogger(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Log.File = filepath.Join(t.TempDir(), "app.log")
	cfg.Log.MaxSizeMB = 1

	InitLogger(cfg)
	if Log == prev {
		t.Fatal("expected a new logger")
	}
	if !Log.Core().Enabled(zap.DebugLevel) {
		t.Fatal("debug mode should enable debug level")
	}
}
