package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"axiscube/internal/config"
)

func TestRun_Snapshot(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = config.BackendSnapshot
	cfg.Axis = "0,1,0"
	cfg.Frames = 3
	cfg.Out = filepath.Join(t.TempDir(), "cube.png")

	if err := run(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(cfg.Out); err != nil || fi.Size() == 0 {
		t.Fatalf("snapshot not written: %v", err)
	}
}

func TestRun_SnapshotRejectsAxis(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = config.BackendSnapshot
	cfg.Axis = "0,0,0"
	cfg.Frames = 2
	cfg.Out = filepath.Join(t.TempDir(), "cube.png")

	err := run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "not accepted") {
		t.Fatalf("err = %v", err)
	}
}
