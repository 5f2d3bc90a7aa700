package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/bfs"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// parentsAndChild is the A/B/C family: A and B are parents of C, with no
// direct A–B relationship.
func parentsAndChild() *family.Graph {
	return family.NewGraph(
		[]family.Person{
			{ID: "A", Gender: family.GenderMale},
			{ID: "B", Gender: family.GenderFemale},
			{ID: "C", Gender: family.GenderFemale},
		},
		[]family.Relationship{
			{ID: "ac", From: "A", To: "C", Kind: family.ParentChild, Weight: 1},
			{ID: "bc", From: "B", To: "C", Kind: family.ParentChild, Weight: 1},
		},
	)
}

func TestShortestPath_Errors(t *testing.T) {
	_, err := bfs.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := parentsAndChild()
	_, err = bfs.ShortestPath(g, "", "B")
	assert.ErrorIs(t, err, bfs.ErrEmptyID)

	_, err = bfs.ShortestPath(g, "A", "B", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestShortestPath_ThroughChild(t *testing.T) {
	p, err := bfs.ShortestPath(parentsAndChild(), "A", "B")
	require.NoError(t, err)

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"A", "C", "B"}, p.PersonIDs)
	assert.Equal(t, "ac", p.Relationships[0].ID)
	assert.Equal(t, "bc", p.Relationships[1].ID)
	assert.True(t, p.Valid())
}

func TestShortestPath_EmptyResults(t *testing.T) {
	g := family.NewGraph(
		[]family.Person{{ID: "A"}, {ID: "B"}, {ID: "X"}},
		[]family.Relationship{{ID: "ab", From: "A", To: "B", Kind: family.Spouse}},
	)

	cases := map[string][2]string{
		"same person": {"A", "A"},
		"unreachable": {"A", "X"},
		"unknown":     {"A", "nobody"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := bfs.ShortestPath(g, c[0], c[1])
			require.NoError(t, err)
			assert.True(t, p.Empty())
		})
	}
}

func TestShortestPath_TieBreakBySnapshotOrder(t *testing.T) {
	// Two routes of length 2 from S to T: via L (declared first) and via R.
	g := family.NewGraph(
		[]family.Person{{ID: "S"}, {ID: "L"}, {ID: "R"}, {ID: "T"}},
		[]family.Relationship{
			{ID: "sl", From: "S", To: "L", Kind: family.Sibling},
			{ID: "sr", From: "S", To: "R", Kind: family.Sibling},
			{ID: "rt", From: "R", To: "T", Kind: family.Spouse},
			{ID: "lt", From: "L", To: "T", Kind: family.Spouse},
		},
	)
	p, err := bfs.ShortestPath(g, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "L", "T"}, p.PersonIDs)

	again, err := bfs.ShortestPath(g, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestShortestPath_Options(t *testing.T) {
	// chain A -spouse- B -parent-> C
	g := family.NewGraph(
		[]family.Person{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		[]family.Relationship{
			{ID: "ab", From: "A", To: "B", Kind: family.Spouse},
			{ID: "bc", From: "B", To: "C", Kind: family.ParentChild},
		},
	)

	p, err := bfs.ShortestPath(g, "A", "C", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.True(t, p.Empty(), "depth limit hides C")

	p, err = bfs.ShortestPath(g, "A", "C", bfs.WithKinds(family.ParentChild))
	require.NoError(t, err)
	assert.True(t, p.Empty(), "blood-only search cannot cross the marriage")

	p, err = bfs.ShortestPath(g, "C", "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, p.PersonIDs)
}

func TestTraverse_Layers(t *testing.T) {
	res, err := bfs.Traverse(parentsAndChild(), "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, res.Order)
	assert.Equal(t, map[string]int{"C": 0, "A": 1, "B": 1}, res.Depth)

	res, err = bfs.Traverse(parentsAndChild(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, res.Order)
}

// TestShortestPath_Optimal checks BFS against exhaustive DFS enumeration of
// simple paths on small random families.
func TestShortestPath_Optimal(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 40; round++ {
		g := randomFamily(r, 7, 9)
		ids := g.PersonIDs()
		for _, s := range ids {
			for _, tgt := range ids {
				if s == tgt {
					continue
				}
				p, err := bfs.ShortestPath(g, s, tgt)
				require.NoError(t, err)
				best := exhaustiveShortest(g, s, tgt)
				if best < 0 {
					assert.True(t, p.Empty(), "round %d %s→%s", round, s, tgt)
					continue
				}
				assert.Equal(t, best, p.Len(), "round %d %s→%s", round, s, tgt)
				assert.True(t, p.Valid())
			}
		}
	}
}

func randomFamily(r *rand.Rand, n, m int) *family.Graph {
	persons := make([]family.Person, n)
	for i := range persons {
		persons[i] = family.Person{ID: fmt.Sprintf("p%d", i)}
	}
	kinds := []family.Kind{family.ParentChild, family.Spouse, family.Sibling, family.Other}
	rels := make([]family.Relationship, 0, m)
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		rels = append(rels, family.Relationship{
			ID:     fmt.Sprintf("r%d", i),
			From:   persons[u].ID,
			To:     persons[v].ID,
			Kind:   kinds[r.Intn(len(kinds))],
			Weight: int64(1 + r.Intn(5)),
		})
	}

	return family.NewGraph(persons, rels)
}

// exhaustiveShortest enumerates every simple path with an explicit stack and
// returns the fewest edges, or -1.
func exhaustiveShortest(g *family.Graph, s, t string) int {
	type frame struct {
		id      string
		depth   int
		visited map[string]bool
	}
	best := -1
	stack := []frame{{id: s, visited: map[string]bool{s: true}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.id == t {
			if best < 0 || f.depth < best {
				best = f.depth
			}
			continue
		}
		for _, r := range g.Relationships() {
			nbr, ok := r.Opposite(f.id)
			if !ok || f.visited[nbr] {
				continue
			}
			seen := make(map[string]bool, len(f.visited)+1)
			for k := range f.visited {
				seen[k] = true
			}
			seen[nbr] = true
			stack = append(stack, frame{id: nbr, depth: f.depth + 1, visited: seen})
		}
	}

	return best
}
