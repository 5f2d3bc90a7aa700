package dfs_test

import (
	"fmt"
	"testing"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/dfs"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// binaryLineage builds a complete binary descent tree of n persons.
func binaryLineage(n int) *family.Graph {
	persons := make([]family.Person, n)
	rels := make([]family.Relationship, 0, n-1)
	for i := range persons {
		persons[i] = family.Person{ID: fmt.Sprintf("p%d", i)}
		if i > 0 {
			rels = append(rels, family.Relationship{
				ID: fmt.Sprintf("r%d", i), From: persons[(i-1)/2].ID, To: persons[i].ID, Kind: family.ParentChild,
			})
		}
	}

	return family.NewGraph(persons, rels)
}

func BenchmarkGenerations(b *testing.B) {
	g := binaryLineage(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Generations(g)
	}
}

func BenchmarkLineageCycles(b *testing.B) {
	g := binaryLineage(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.LineageCycles(g)
	}
}
