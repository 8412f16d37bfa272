package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/vovakirdan/flappy/internal/flappy"
)

const (
	smallFontSize = 18
	largeFontSize = 36
)

var (
	textWhite = color.White
	textRed   = color.RGBA{R: 0xe0, G: 0x2a, B: 0x2a, A: 0xff}
)

// faces holds the text faces for each overlay style.
type faces struct {
	small *text.GoTextFace
	large *text.GoTextFace
}

func newFaces() (*faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}
	return &faces{
		small: &text.GoTextFace{Source: src, Size: smallFontSize},
		large: &text.GoTextFace{Source: src, Size: largeFontSize},
	}, nil
}

// style returns the face and color for a text style.
func (f *faces) style(s flappy.TextStyle) (*text.GoTextFace, color.Color) {
	if s == flappy.TextGameOver {
		return f.large, textRed
	}
	return f.small, textWhite
}
