package kinship_test

import (
	"fmt"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/bfs"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/kinship"
)

func ExampleDescribe() {
	g := family.NewGraph(
		[]family.Person{
			{ID: "m", Name: "Mara", Gender: family.GenderFemale},
			{ID: "j", Name: "Jon", Gender: family.GenderMale},
			{ID: "t", Name: "Theo", Gender: family.GenderMale},
		},
		[]family.Relationship{
			{ID: "1", From: "m", To: "j", Kind: family.ParentChild, Weight: 1},
			{ID: "2", From: "j", To: "t", Kind: family.ParentChild, Weight: 1},
		},
	)

	p, _ := bfs.ShortestPath(g, "t", "m")
	fmt.Println(kinship.Describe(g, p, "t", "m"))
	// Output: Mara is the grandmother of Theo
}
