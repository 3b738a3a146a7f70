package parallax

// SortPaintOrder reorders entities back-to-front for painting: descending
// distance from pointer to each entity's center, so the nearest entity is
// painted last and occludes the others. Entities at equal distance keep
// their previous relative order.
//
// Uses insertion sort: zero allocations, stable, and O(n) for the common
// case where the order barely changed since the previous frame.
func SortPaintOrder(entities []*Entity, pointer Point) {
	for _, e := range entities {
		e.sortKey = Distance(pointer, e.center)
	}
	sortByKeyDesc(entities)
}

func sortByKeyDesc(entities []*Entity) {
	for i := 1; i < len(entities); i++ {
		key := entities[i]
		j := i - 1
		for j >= 0 && entities[j].sortKey < key.sortKey {
			entities[j+1] = entities[j]
			j--
		}
		entities[j+1] = key
	}
}
