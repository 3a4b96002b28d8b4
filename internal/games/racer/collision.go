package racer

// DetectHits returns every live entity in coll whose box overlaps the player's.
func DetectHits(player *Entity, coll []*Entity) []*Entity {
	if player == nil {
		return nil
	}
	box := player.Bounds()

	var hits []*Entity
	for _, e := range coll {
		if e.Alive && e.Bounds().Intersects(box) {
			hits = append(hits, e)
		}
	}
	return hits
}

// Remove marks the hit entities dead and drops them from coll, keeping the
// order of the survivors. Entities not in coll are ignored.
func Remove(coll []*Entity, hits []*Entity) []*Entity {
	if len(hits) == 0 {
		return coll
	}
	gone := make(map[*Entity]bool, len(hits))
	for _, h := range hits {
		gone[h] = true
	}

	kept := coll[:0]
	for _, e := range coll {
		if gone[e] {
			e.Alive = false
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so removed entities can be collected
	for i := len(kept); i < len(coll); i++ {
		coll[i] = nil
	}
	return kept
}
