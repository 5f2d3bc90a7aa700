package dfs

import (
	"sort"
	"strings"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// DetectCycles lists the directed cycles closed by back arcs of view. A
// back arc yields one cycle, so cycles sharing persons with one already
// found may be missing; the result is non-empty exactly when view has a
// cycle. Each cycle is closed ([a b c a]) and rotated to start at its smallest
// person ID; the list is sorted. Bidirectional arcs make every pair a
// cycle, so views are expected to be forward-only.
func DetectCycles(view *family.AdjacencyView) (bool, [][]string, error) {
	if view == nil {
		return false, nil, ErrViewNil
	}

	state := make(map[string]int, view.Len())
	path := make([]string, 0, view.Len())
	seen := make(map[string]struct{})
	var cycles [][]string

	for _, root := range view.PersonIDs() {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		path = append(path, root)
		stack := []frame{{id: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			arcs := view.Arcs(top.id)
			if top.next == len(arcs) {
				state[top.id] = Black
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
				continue
			}
			next := arcs[top.next].Neighbor
			top.next++
			switch state[next] {
			case White:
				state[next] = Gray
				path = append(path, next)
				stack = append(stack, frame{id: next})
			case Gray:
				recordCycle(next, path, seen, &cycles)
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return strings.Join(cycles[i], ",") < strings.Join(cycles[j], ",")
	})

	return len(cycles) > 0, cycles, nil
}

// LineageCycles lists the parent-child cycles of g closed by back arcs, as
// DetectCycles does. A nil graph has none.
func LineageCycles(g *family.Graph) [][]string {
	if g == nil {
		return nil
	}
	_, cycles, _ := DetectCycles(family.BuildAdjacency(g, family.WithKinds(family.ParentChild)))

	return cycles
}

func recordCycle(start string, path []string, seen map[string]struct{}, cycles *[][]string) {
	idx := indexOf(path, start)
	base := minimalRotation(path[idx:])
	closed := append(base, base[0])
	sig := strings.Join(closed, ",")
	if _, ok := seen[sig]; ok {
		return
	}
	seen[sig] = struct{}{}
	*cycles = append(*cycles, closed)
}

func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// minimalRotation returns a copy of s rotated to its lexicographically
// smallest rotation (Booth's algorithm, O(n)).
func minimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	out := make([]string, n, n+1)
	copy(out, doubled[k:k+n])

	return out
}
