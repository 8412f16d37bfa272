// Package assets provides the sprite images, embedded in the binary and
// overridable from disk.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/flappy/internal/config"
)

//go:embed images/*.png
var imagesFS embed.FS

// Set holds the four decoded sprites.
type Set struct {
	Background image.Image
	Bird       image.Image
	TopPipe    image.Image
	BottomPipe image.Image
}

// LoadSet loads every sprite named in cfg. Any missing or undecodable image
// is an error; there is no placeholder.
func LoadSet(cfg config.Assets) (*Set, error) {
	var (
		set  Set
		errs []error
	)
	load := func(dst *image.Image, name string) {
		img, err := Load(name)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = img
	}

	load(&set.Background, cfg.Background)
	load(&set.Bird, cfg.Bird)
	load(&set.TopPipe, cfg.TopPipe)
	load(&set.BottomPipe, cfg.BottomPipe)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &set, nil
}

// Load decodes one image. A file at path on disk takes precedence over the
// embedded copy with the same assets-relative name.
func Load(path string) (image.Image, error) {
	b, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// ReadFile returns the raw bytes of an asset, preferring the filesystem.
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("assets: empty asset path")
	}
	if b, err := os.ReadFile(path); err == nil {
		return b, nil
	}
	b, err := imagesFS.ReadFile(cleanAssetPath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: %s not found on disk or embedded", path)
		}
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return b, nil
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/images/"); idx >= 0 {
		return s[idx+1:]
	}
	s = strings.TrimPrefix(s, "./")
	s = strings.TrimPrefix(s, "assets/")
	if !strings.HasPrefix(s, "images/") {
		s = "images/" + filepath.Base(s)
	}
	return s
}
