package bellman_ford_test

import (
	"fmt"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/bellman_ford"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// ExampleShortestPath flags a feud loop whose total weight is negative.
func ExampleShortestPath() {
	g := family.NewGraph(
		[]family.Person{{ID: "ana"}, {ID: "bo"}, {ID: "cal"}},
		[]family.Relationship{
			{ID: "1", From: "ana", To: "bo", Kind: family.Other, Weight: 1},
			{ID: "2", From: "bo", To: "cal", Kind: family.Other, Weight: 1},
			{ID: "3", From: "cal", To: "bo", Kind: family.Other, Weight: -5},
		},
	)

	res, err := bellman_ford.ShortestPath(family.BuildAdjacency(g), "ana", "cal", g.Relationships())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.NegativeCycle, res.Path.Empty())
	// Output: true true
}
