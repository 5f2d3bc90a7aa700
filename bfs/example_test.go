package bfs_test

import (
	"fmt"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/bfs"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// ExampleShortestPath links two in-laws through a marriage and a birth.
//
//	mara ─spouse─ jon ─parent→ lia ─spouse─ theo
func ExampleShortestPath() {
	g := family.NewGraph(
		[]family.Person{{ID: "mara"}, {ID: "jon"}, {ID: "lia"}, {ID: "theo"}},
		[]family.Relationship{
			{ID: "m1", From: "mara", To: "jon", Kind: family.Spouse},
			{ID: "c1", From: "jon", To: "lia", Kind: family.ParentChild},
			{ID: "m2", From: "theo", To: "lia", Kind: family.Spouse},
		},
	)

	p, err := bfs.ShortestPath(g, "theo", "mara")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.PersonIDs, p.Len())
	// Output: [theo lia jon mara] 3
}
