// Package search is the single entry point for weighted relationship paths:
// it runs Dijkstra or Bellman-Ford over the same family.AdjacencyView and
// returns a uniform Result.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/bellman_ford"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/dijkstra"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

// ErrUnknownAlgorithm is returned for an Algorithm outside the known set.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm selects the weighted search strategy.
type Algorithm int

const (
	// Dijkstra requires non-negative weights.
	Dijkstra Algorithm = iota
	// BellmanFord tolerates negative weights and detects negative cycles.
	BellmanFord
)

// String returns the CLI name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case BellmanFord:
		return "bellman-ford"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "dijkstra" and "bellman-ford" (or "bellmanford",
// "bellman_ford") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra", "":
		return Dijkstra, nil
	case "bellman-ford", "bellmanford", "bellman_ford":
		return BellmanFord, nil
	}

	return Dijkstra, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result is the outcome of a weighted query.
//
// Path is nil exactly when NegativeCycle is true. Otherwise it is non-nil;
// an empty Path with Weight family.Infinity means "unreachable".
type Result struct {
	Path          *family.Path
	NegativeCycle bool
}

// Reachable reports whether a path was found (source == target included).
func (r Result) Reachable() bool {
	return r.Path != nil && r.Path.Weight != family.Infinity
}

// Weighted returns the minimum-weight path from source to target over view,
// resolving steps against rels, with the chosen algorithm.
func Weighted(view *family.AdjacencyView, source, target string, rels []family.Relationship, algorithm Algorithm) (Result, error) {
	switch algorithm {
	case Dijkstra:
		p, err := dijkstra.ShortestPath(view, source, target, rels)
		if err != nil {
			return Result{}, err
		}
		return Result{Path: &p}, nil
	case BellmanFord:
		res, err := bellman_ford.ShortestPath(view, source, target, rels)
		if err != nil {
			return Result{}, err
		}
		if res.NegativeCycle {
			return Result{NegativeCycle: true}, nil
		}
		return Result{Path: &res.Path}, nil
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algorithm))
	}
}
