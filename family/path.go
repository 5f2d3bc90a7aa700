package family

// ReconstructPath walks the predecessor chain prev backward from target to
// source and resolves, for each consecutive pair, the relationship that
// connects them in either orientation. When several relationships connect the
// same pair the lightest wins, then the earliest in rels.
//
// It returns false when the chain is broken, loops, or a step has no
// connecting relationship. source == target yields a zero-length path
// carrying weight.
func ReconstructPath(prev map[string]string, source, target string, rels []Relationship, weight int64) (Path, bool) {
	ids := []string{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || p == "" {
			return Path{}, false
		}
		ids = append(ids, p)
		if len(ids) > len(prev)+1 {
			return Path{}, false
		}
		cur = p
	}
	// reverse to get source → target
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	if len(ids) == 1 {
		return Path{Weight: weight}, true
	}

	steps := make([]Relationship, 0, len(ids)-1)
	for i := 0; i+1 < len(ids); i++ {
		r, ok := Connecting(rels, ids[i], ids[i+1])
		if !ok {
			return Path{}, false
		}
		steps = append(steps, r)
	}

	return Path{PersonIDs: ids, Relationships: steps, Weight: weight}, true
}

// Connecting returns the lightest relationship in rels joining a and b in
// either orientation; ties keep the earliest.
func Connecting(rels []Relationship, a, b string) (Relationship, bool) {
	var (
		best  Relationship
		found bool
	)
	for _, r := range rels {
		if !r.Connects(a, b) {
			continue
		}
		if !found || r.Weight < best.Weight {
			best, found = r, true
		}
	}

	return best, found
}

// PathFromArcs assembles a Path from a start person and the arcs walked.
func PathFromArcs(start string, arcs []Arc) Path {
	if len(arcs) == 0 {
		return Path{}
	}
	p := Path{
		PersonIDs:     make([]string, 0, len(arcs)+1),
		Relationships: make([]Relationship, 0, len(arcs)),
	}
	p.PersonIDs = append(p.PersonIDs, start)
	for _, a := range arcs {
		p.PersonIDs = append(p.PersonIDs, a.Neighbor)
		p.Relationships = append(p.Relationships, a.Rel)
		p.Weight += a.Rel.Weight
	}

	return p
}

// Valid reports whether p satisfies the Path invariants: the zero Path, or
// len(PersonIDs) == len(Relationships)+1 with every relationship joining its
// two neighbouring persons.
func (p Path) Valid() bool {
	if len(p.PersonIDs) == 0 && len(p.Relationships) == 0 {
		return true
	}
	if len(p.PersonIDs) != len(p.Relationships)+1 {
		return false
	}
	for i, r := range p.Relationships {
		if !r.Connects(p.PersonIDs[i], p.PersonIDs[i+1]) {
			return false
		}
	}

	return true
}
