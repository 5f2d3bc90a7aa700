package unionfind

// Set is a disjoint-set forest over string IDs.
type Set struct {
	parent map[string]string
	rank   map[string]int
	order  []string // registration order, for deterministic iteration
}

// New returns an empty Set, optionally pre-registering ids as singletons.
func New(ids ...string) *Set {
	s := &Set{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
		order:  make([]string, 0, len(ids)),
	}
	for _, id := range ids {
		s.MakeSet(id)
	}

	return s
}

// MakeSet registers id as a singleton. Registering an existing id is a no-op.
func (s *Set) MakeSet(id string) {
	if _, ok := s.parent[id]; ok {
		return
	}
	s.parent[id] = id
	s.rank[id] = 0
	s.order = append(s.order, id)
}

// Find returns the representative of id's set. An unregistered id is its own
// representative and stays unregistered.
func (s *Set) Find(id string) string {
	root := id
	for {
		p, ok := s.parent[root]
		if !ok || p == root {
			break
		}
		root = p
	}
	// second pass: point every node on the walk straight at the root
	for id != root {
		next, ok := s.parent[id]
		if !ok {
			break
		}
		s.parent[id] = root
		id = next
	}

	return root
}

// Union merges the sets of a and b and reports whether they were disjoint.
// The lower-rank root goes under the higher-rank root; on equal ranks b's
// root goes under a's root and a's root gains one rank.
func (s *Set) Union(a, b string) bool {
	s.MakeSet(a)
	s.MakeSet(b)

	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case s.rank[ra] < s.rank[rb]:
		s.parent[ra] = rb
	case s.rank[ra] > s.rank[rb]:
		s.parent[rb] = ra
	default:
		s.parent[rb] = ra
		s.rank[ra]++
	}

	return true
}

// Connected reports whether a and b share a representative.
func (s *Set) Connected(a, b string) bool { return s.Find(a) == s.Find(b) }

// Len returns the number of registered ids.
func (s *Set) Len() int { return len(s.order) }

// Count returns the number of disjoint sets among registered ids.
func (s *Set) Count() int {
	n := 0
	for _, id := range s.order {
		if s.parent[id] == id {
			n++
		}
	}

	return n
}

// Groups returns the members of each set. Groups are ordered by the first
// registered member and members keep registration order.
func (s *Set) Groups() [][]string {
	index := make(map[string]int)
	var groups [][]string
	for _, id := range s.order {
		root := s.Find(id)
		i, ok := index[root]
		if !ok {
			i = len(groups)
			index[root] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], id)
	}

	return groups
}
