package prim_kruskal

import (
	"sort"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/unionfind"
)

// Kruskal computes a minimum spanning forest of the family, treating every
// relationship as an undirected weighted edge.
//
// Steps:
//  1. Copy the relationships, skipping self-loops.
//  2. Stable sort by ascending weight (ties keep snapshot order).
//  3. Walk the sorted list; keep an edge when its endpoints are in different
//     union-find sets, then merge them.
//  4. Stop once |V|-1 edges are kept.
//
// A disconnected family yields one tree per component.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *family.Graph) ([]family.Relationship, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	ids := g.PersonIDs()
	if len(ids) == 0 {
		return []family.Relationship{}, 0, nil
	}

	edges := sortedEdges(g.Relationships())
	uf := unionfind.New(ids...)
	forest := make([]family.Relationship, 0, len(ids)-1)
	var total int64
	for _, e := range edges {
		if !uf.Union(e.From, e.To) {
			continue // endpoints already joined
		}
		forest = append(forest, e)
		total += e.Weight
		if len(forest) == len(ids)-1 {
			break
		}
	}

	return forest, total, nil
}

// sortedEdges returns rels without self-loops, stably sorted by ascending weight.
func sortedEdges(rels []family.Relationship) []family.Relationship {
	edges := make([]family.Relationship, 0, len(rels))
	for _, r := range rels {
		if r.From == r.To {
			continue
		}
		edges = append(edges, r)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	return edges
}
