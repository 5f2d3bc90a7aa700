package prim_kruskal_test

import (
	"fmt"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/prim_kruskal"
)

// ExamplePartitionIntoSubfamilies cuts the loosest tie between two households.
func ExamplePartitionIntoSubfamilies() {
	g := family.NewGraph(
		[]family.Person{{ID: "ana"}, {ID: "ben"}, {ID: "cy"}, {ID: "dora"}},
		[]family.Relationship{
			{ID: "m1", From: "ana", To: "ben", Kind: family.Spouse, Weight: 1},
			{ID: "m2", From: "cy", To: "dora", Kind: family.Spouse, Weight: 1},
			{ID: "s1", From: "ben", To: "cy", Kind: family.Sibling, Weight: 3},
		},
	)

	p, err := prim_kruskal.PartitionIntoSubfamilies(g, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, sf := range p.Subfamilies {
		fmt.Println(sf.Index, sf.Members)
	}
	fmt.Println("cut:", p.Removed[0].ID)
	// Output:
	// 0 [ana ben]
	// 1 [cy dora]
	// cut: s1
}

// ExampleMinimumSpanningTree keeps the closest ties that connect everybody.
func ExampleMinimumSpanningTree() {
	g := family.NewGraph(
		[]family.Person{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		[]family.Relationship{
			{ID: "ab", From: "A", To: "B", Kind: family.ParentChild, Weight: 1},
			{ID: "bc", From: "B", To: "C", Kind: family.ParentChild, Weight: 2},
			{ID: "ac", From: "A", To: "C", Kind: family.Other, Weight: 4},
		},
	)

	for _, e := range prim_kruskal.MinimumSpanningTree(g) {
		fmt.Printf("%s-%s ", e.From, e.To)
	}
	fmt.Println()
	// Output: A-B B-C
}
