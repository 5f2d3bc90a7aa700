package prim_kruskal

import (
	"container/heap"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// Prim grows a minimum spanning tree from a root person, treating every
// relationship as an undirected weighted edge.
//
// The root is the first person of the snapshot unless WithRoot says
// otherwise. Only the root's component is spanned; persons it cannot reach
// are simply absent from the tree. Method options are ignored.
//
// Returns the tree edges in the order they were added and their total weight.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *family.Graph, opts ...Option) ([]family.Relationship, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g.PersonCount() == 0 {
		return []family.Relationship{}, 0, nil
	}
	root := o.Root
	if root == "" {
		root = g.Persons()[0].ID
	}
	if !g.HasPerson(root) {
		return nil, 0, ErrRootNotFound
	}

	view := family.BuildAdjacency(g, family.WithConnectivity())
	n := view.Len()
	visited := make(map[string]bool, n)
	tree := make([]family.Relationship, 0, n-1)
	var total int64

	pq := &arcPQ{}
	heap.Init(pq)
	var seq uint64
	grow := func(id string) {
		visited[id] = true
		for _, a := range view.Arcs(id) {
			if !visited[a.Neighbor] {
				heap.Push(pq, arcItem{arc: a, seq: seq})
				seq++
			}
		}
	}

	grow(root)
	for pq.Len() > 0 && len(tree) < n-1 {
		item := heap.Pop(pq).(arcItem)
		v := item.arc.Neighbor
		if visited[v] {
			continue // would close a cycle
		}
		tree = append(tree, item.arc.Rel)
		total += item.arc.Rel.Weight
		grow(v)
	}

	return tree, total, nil
}

// MinimumSpanningTree returns Prim's tree from the first person of the family.
// A nil or empty family yields no edges.
func MinimumSpanningTree(g *family.Graph) []family.Relationship {
	tree, _, err := Prim(g)
	if err != nil {
		return nil
	}

	return tree
}

// arcItem is a heap entry: a crossing arc and its push sequence.
type arcItem struct {
	arc family.Arc
	seq uint64
}

// arcPQ is a min-heap of arcItem ordered by weight, then push sequence.
type arcPQ []arcItem

func (pq arcPQ) Len() int { return len(pq) }

func (pq arcPQ) Less(i, j int) bool {
	if pq[i].arc.Rel.Weight != pq[j].arc.Rel.Weight {
		return pq[i].arc.Rel.Weight < pq[j].arc.Rel.Weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq arcPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *arcPQ) Push(x interface{}) { *pq = append(*pq, x.(arcItem)) }

func (pq *arcPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
