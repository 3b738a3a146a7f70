package parallax

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func mustRect(t testing.TB, id string, x, y, w, h float64) *Entity {
	t.Helper()
	e, err := NewRectEntity(id, Point{x, y}, w, h, ColorWhite)
	if err != nil {
		t.Fatal(err)
	}
	e.state = StateVisible
	e.opacity.Value = 1
	return e
}

func TestSortPaintOrderFarthestFirst(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 20; trial++ {
		var ents []*Entity
		for i := 0; i < 30; i++ {
			ents = append(ents, mustRect(t, fmt.Sprint(i), rng.Float64()*800, rng.Float64()*600, 10, 10))
		}
		p := Point{rng.Float64() * 800, rng.Float64() * 600}
		SortPaintOrder(ents, p)
		for i := 1; i < len(ents); i++ {
			if Distance(p, ents[i-1].center) < Distance(p, ents[i].center) {
				t.Fatalf("trial %d: index %d nearer than index %d", trial, i-1, i)
			}
		}
	}
}

func TestSortPaintOrderTies(t *testing.T) {
	// Four entities on a circle around the pointer: all distances equal.
	ents := []*Entity{
		mustRect(t, "n", 0, -10, 4, 4),
		mustRect(t, "e", 10, 0, 4, 4),
		mustRect(t, "s", 0, 10, 4, 4),
		mustRect(t, "w", -10, 0, 4, 4),
	}
	SortPaintOrder(ents, Point{})
	if len(ents) != 4 {
		t.Fatalf("len = %d, want 4", len(ents))
	}
	seen := map[string]bool{}
	for _, e := range ents {
		seen[e.id] = true
	}
	if len(seen) != 4 {
		t.Errorf("entities lost or duplicated on ties: %v", seen)
	}
}

func TestSortPaintOrderEmpty(t *testing.T) {
	SortPaintOrder(nil, Point{})
}

func TestSortPaintOrderZeroAlloc(t *testing.T) {
	var ents []*Entity
	for i := 0; i < 40; i++ {
		ents = append(ents, mustRect(t, fmt.Sprint(i), float64(i*13%400), float64(i*29%300), 10, 10))
	}
	x := 0.0
	result := testing.AllocsPerRun(100, func() {
		x += 7
		SortPaintOrder(ents, Point{x, 150})
	})
	if result > 0 {
		t.Errorf("SortPaintOrder allocated %f times per run, want 0", result)
	}
}
