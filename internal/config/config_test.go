package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultFlappyConfig()
	if cfg.Board != def.Board || cfg.Bird != def.Bird || cfg.Pipes != def.Pipes ||
		cfg.Physics != def.Physics || cfg.Timing != def.Timing || cfg.Assets != def.Assets {
		t.Errorf("embedded YAML and DefaultFlappyConfig disagree:\nyaml: %+v\ncode: %+v", cfg, def)
	}
	if strings.Join(cfg.Keys.Jump, ",") != "space,up" || strings.Join(cfg.Keys.Restart, ",") != "r" {
		t.Errorf("unexpected default keys: %+v", cfg.Keys)
	}
}

func TestDefaultGeometry(t *testing.T) {
	cfg := DefaultFlappyConfig()

	if cfg.Gap() != 160 {
		t.Errorf("Gap() = %d, expected 160", cfg.Gap())
	}
	if cfg.Bird.X != cfg.Board.Width/8 || cfg.Bird.Y != cfg.Board.Height/2 {
		t.Errorf("bird should start at (w/8, h/2), got (%d, %d)", cfg.Bird.X, cfg.Bird.Y)
	}
	if cfg.Timing.SpawnInterval != 1500*time.Millisecond {
		t.Errorf("SpawnInterval = %s, expected 1.5s", cfg.Timing.SpawnInterval)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
physics:
  gravity: 2
timing:
  spawn_interval: 750ms
keys:
  restart: [enter]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.Gravity != 2 {
		t.Errorf("Gravity = %d, expected 2", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpVelocity != -12 {
		t.Errorf("JumpVelocity should keep default -12, got %d", cfg.Physics.JumpVelocity)
	}
	if cfg.Timing.SpawnInterval != 750*time.Millisecond {
		t.Errorf("SpawnInterval = %s, expected 750ms", cfg.Timing.SpawnInterval)
	}
	if len(cfg.Keys.Restart) != 1 || cfg.Keys.Restart[0] != "enter" {
		t.Errorf("Restart keys = %v, expected [enter]", cfg.Keys.Restart)
	}
	if cfg.Board.Width != 360 {
		t.Errorf("Board width should keep default, got %d", cfg.Board.Width)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero tick rate", "timing: {tick_rate: 0}", "tick_rate"},
		{"negative spawn interval", "timing: {spawn_interval: -1s}", "spawn_interval"},
		{"empty board", "board: {width: 0, height: 0}", "board size"},
		{"no jump keys", "keys: {jump: []}", "keys.jump"},
		{"missing asset", "assets: {bird: \"\"}", "assets"},
		{"bad yaml", "physics: [", "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Timing.TickRate = 0
	cfg.Bird.Width = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "tick_rate") || !strings.Contains(msg, "bird size") {
		t.Errorf("both problems should be reported, got %q", msg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  pipe_velocity: -6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Physics.PipeVelocity != -6 {
		t.Errorf("PipeVelocity = %d, expected -6", cfg.Physics.PipeVelocity)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("missing custom config should be an error")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Point HOME and the working directory somewhere without configs.
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Board.Height != 640 {
		t.Errorf("Board.Height = %d, expected 640", cfg.Board.Height)
	}
}

func TestLoadPrefersLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", filepath.Join(dir, "home"))
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "flappy.yaml"), []byte("physics: {gravity: 3}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != filepath.Join("configs", "flappy.yaml") {
		t.Errorf("source = %q", source)
	}
	if cfg.Physics.Gravity != 3 {
		t.Errorf("Gravity = %d, expected 3", cfg.Physics.Gravity)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("physics: {gravity: 1}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("physics: {gravity: 2}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Errorf("event path = %q, expected %q", got, w.Path())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	// Second close is a no-op.
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}

func TestWatcherReportsLastOfQuickWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("physics: {gravity: 1}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("physics: {gravity: 2}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte("physics: {gravity: 3}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Load on every event the way hosts do; the last load must see the last write.
	gravity := 0
	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-w.Events:
			cfg, err := LoadFile(got)
			if err != nil {
				t.Fatalf("LoadFile() failed: %v", err)
			}
			gravity = cfg.Physics.Gravity
			continue
		case <-time.After(500 * time.Millisecond):
		case <-timeout:
			t.Fatal("events never settled")
		}
		break
	}

	if gravity != 3 {
		t.Errorf("last reported config has Gravity = %d, expected 3", gravity)
	}
}

func TestLoadFileRejectsEmpty(t *testing.T) {
	for _, content := range []string{"", "  \n\t\n"} {
		path := filepath.Join(t.TempDir(), "flappy.yaml")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); !errors.Is(err, ErrEmpty) {
			t.Errorf("LoadFile(%q content) error = %v, expected ErrEmpty", content, err)
		}
	}
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
