package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
)

func TestLoadSetDefaults(t *testing.T) {
	set, err := LoadSet(config.DefaultFlappyConfig().Assets)
	if err != nil {
		t.Fatalf("LoadSet() error: %v", err)
	}

	tests := []struct {
		name string
		img  image.Image
		w, h int
	}{
		{"background", set.Background, 360, 640},
		{"bird", set.Bird, 34, 24},
		{"top pipe", set.TopPipe, 64, 512},
		{"bottom pipe", set.BottomPipe, 64, 512},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.img.Bounds()
			if b.Dx() != tc.w || b.Dy() != tc.h {
				t.Errorf("size = %dx%d, expected %dx%d", b.Dx(), b.Dy(), tc.w, tc.h)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Assets
	cfg.Bird = "images/nope.png"

	_, err := LoadSet(cfg)
	if err == nil {
		t.Fatal("expected error for missing sprite")
	}
	if !strings.Contains(err.Error(), "nope.png") {
		t.Errorf("error %q should name the missing file", err)
	}

	if _, err := Load(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flappybird.png")

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("loaded %v, expected the 3x2 override", b)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"images/flappybird.png", "images/flappybird.png"},
		{"./images/toppipe.png", "images/toppipe.png"},
		{"assets/images/toppipe.png", "images/toppipe.png"},
		{"/opt/game/images/bottompipe.png", "images/bottompipe.png"},
		{"flappybirdbg.png", "images/flappybirdbg.png"},
	}

	for _, tc := range tests {
		if got := cleanAssetPath(tc.in); got != tc.want {
			t.Errorf("cleanAssetPath(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
