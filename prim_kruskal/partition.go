package prim_kruskal

import (
	"sort"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/unionfind"
)

// PartitionIntoSubfamilies splits the family into k subfamilies.
//
// The Kruskal spanning forest is computed first. k is clamped into
// [1, |persons|] and the k-1 heaviest forest edges are cut, or every forest
// edge when there are fewer. A connected family ends up with exactly k
// subfamilies; a family already split into c components ends up with
// min(c+k-1, |persons|). Among equal weights the edge Kruskal kept first is
// cut first.
//
// Persons are then regrouped with union-find over the remaining forest
// edges. Subfamily ids are handed out walking persons in snapshot order, a
// new id for each group seen for the first time. Each subfamily lists the
// relationships whose endpoints are both inside it; relationships across
// subfamilies, including every cut edge, belong to none.
func PartitionIntoSubfamilies(g *family.Graph, k int) (Partition, error) {
	if g == nil {
		return Partition{}, ErrGraphNil
	}
	forest, _, err := Kruskal(g)
	if err != nil {
		return Partition{}, err
	}

	ids := g.PersonIDs()
	if len(ids) == 0 {
		return Partition{Assignment: map[string]int{}, Tree: forest}, nil
	}
	k = clamp(k, 1, len(ids))

	cuts := min(k-1, len(forest))

	// heaviest first
	order := make([]int, len(forest))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return forest[order[a]].Weight > forest[order[b]].Weight
	})
	cut := make(map[int]bool, cuts)
	removed := make([]family.Relationship, 0, cuts)
	for _, i := range order[:cuts] {
		cut[i] = true
		removed = append(removed, forest[i])
	}

	uf := unionfind.New(ids...)
	for i, e := range forest {
		if !cut[i] {
			uf.Union(e.From, e.To)
		}
	}

	p := Partition{
		Assignment: make(map[string]int, len(ids)),
		Tree:       forest,
		Removed:    removed,
	}
	rootIndex := make(map[string]int)
	for _, id := range ids {
		root := uf.Find(id)
		idx, ok := rootIndex[root]
		if !ok {
			idx = len(p.Subfamilies)
			rootIndex[root] = idx
			p.Subfamilies = append(p.Subfamilies, Subfamily{Index: idx})
		}
		p.Assignment[id] = idx
		p.Subfamilies[idx].Members = append(p.Subfamilies[idx].Members, id)
	}
	for _, r := range g.Relationships() {
		a, b := p.Assignment[r.From], p.Assignment[r.To]
		if a == b {
			p.Subfamilies[a].Relationships = append(p.Subfamilies[a].Relationships, r)
		}
	}

	return p, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
