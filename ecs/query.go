package ecs

// intersectIDs returns the slot ids present in every set, in the dense order
// of the smallest set. A nil set yields nil.
func intersectIDs(sets ...*SparseSet) []entityID {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]entityID, 0, smallest.Len())
outer:
	for _, id := range smallest.ids() {
		for _, s := range sets {
			if s != smallest && !s.Has(id) {
				continue outer
			}
		}
		out = append(out, id)
	}
	return out
}
