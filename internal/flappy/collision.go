package flappy

import "github.com/vovakirdan/flappy/internal/core"

// Collides reports whether two axis-aligned rectangles overlap.
// Touching edges do not collide.
func Collides(a, b core.Rect) bool {
	return a.Intersects(b)
}
