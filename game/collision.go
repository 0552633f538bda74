package game

// Overlaps reports whether the bounding boxes of two sprites placed at the
// given origins intersect. Masks are not consulted, so transparent corners
// still register as hits.
func Overlaps(a *Sprite, ax, ay int, b *Sprite, bx, by int) bool {
	return ax < bx+b.Width && ax+a.Width > bx &&
		ay < by+b.Height && ay+a.Height > by
}
