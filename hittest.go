package parallax

// HitCandidates appends to buf every painted entity whose last-painted bounds
// contain p, preserving the slice's paint order. p must be in the same space
// as the bounds, i.e. with any parallax translation already removed.
func HitCandidates(entities []*Entity, p Point, buf []*Entity) []*Entity {
	for _, e := range entities {
		if e.painted() && e.bounds.Contains(p.X, p.Y) {
			buf = append(buf, e)
		}
	}
	return buf
}

// HitTest returns the frontmost entity at p, or nil. With entities in paint
// order this is the last element of HitCandidates: the one painted last and
// therefore visible on top.
func HitTest(entities []*Entity, p Point) *Entity {
	// Iterate backward (reverse painter order): topmost visual entity first.
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		if e.painted() && e.bounds.Contains(p.X, p.Y) {
			return e
		}
	}
	return nil
}
