package family

// Graph is an immutable snapshot of a family.
//
// It is safe for concurrent readers. Nothing in this module mutates a Graph
// after NewGraph returns; callers must not mutate the slices it returns.
type Graph struct {
	persons   []Person
	byID      map[string]int // person ID → index in persons
	rels      []Relationship
	anomalies Anomalies
}

// NewGraph builds a Graph from caller-supplied persons and relationships.
//
// Filtering (never an error):
//   - persons with an empty ID are dropped;
//   - a person ID seen twice keeps the first record;
//   - a relationship ID seen twice keeps the first record (empty IDs are never duplicates);
//   - a relationship whose From or To is not a known person is dropped.
//
// Complexity: O(V + E).
func NewGraph(persons []Person, rels []Relationship) *Graph {
	g := &Graph{
		persons: make([]Person, 0, len(persons)),
		byID:    make(map[string]int, len(persons)),
		rels:    make([]Relationship, 0, len(rels)),
	}

	for _, p := range persons {
		if p.ID == "" {
			g.anomalies.EmptyPersonIDs++
			continue
		}
		if _, dup := g.byID[p.ID]; dup {
			g.anomalies.DuplicatePersons++
			continue
		}
		g.byID[p.ID] = len(g.persons)
		g.persons = append(g.persons, p)
	}

	seen := make(map[string]struct{}, len(rels))
	for _, r := range rels {
		if r.ID != "" {
			if _, dup := seen[r.ID]; dup {
				g.anomalies.DuplicateRelationships++
				continue
			}
		}
		if !g.HasPerson(r.From) || !g.HasPerson(r.To) {
			g.anomalies.DanglingRelationships++
			continue
		}
		if r.ID != "" {
			seen[r.ID] = struct{}{}
		}
		g.rels = append(g.rels, r)
	}

	return g
}

// Persons returns the persons in snapshot order.
func (g *Graph) Persons() []Person { return g.persons }

// PersonIDs returns the person IDs in snapshot order.
func (g *Graph) PersonIDs() []string {
	ids := make([]string, len(g.persons))
	for i, p := range g.persons {
		ids[i] = p.ID
	}

	return ids
}

// Relationships returns the kept relationships in snapshot order.
func (g *Graph) Relationships() []Relationship { return g.rels }

// Person looks up a person by ID.
func (g *Graph) Person(id string) (Person, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Person{}, false
	}

	return g.persons[i], true
}

// HasPerson reports whether id is a known person.
func (g *Graph) HasPerson(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// PersonCount returns |V|.
func (g *Graph) PersonCount() int { return len(g.persons) }

// RelationshipCount returns |E| after filtering.
func (g *Graph) RelationshipCount() int { return len(g.rels) }

// Anomalies reports what NewGraph dropped.
func (g *Graph) Anomalies() Anomalies { return g.anomalies }

// Index returns the snapshot position of a person, or -1.
func (g *Graph) Index(id string) int {
	if i, ok := g.byID[id]; ok {
		return i
	}

	return -1
}
