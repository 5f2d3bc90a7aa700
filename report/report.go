// Package report builds kinship tables over many pairs of persons at once.
package report

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/bfs"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/kinship"
)

// ErrGraphNil is returned when a nil graph is supplied.
var ErrGraphNil = errors.New("report: graph is nil")

// Cell describes how Target relates to Source.
type Cell struct {
	Source   string
	Target   string
	Hops     int
	Relation kinship.Relation
	Sentence string
}

// Table holds one Cell per ordered pair of IDs; Cells[i][j] has
// Source IDs[i] and Target IDs[j].
type Table struct {
	IDs   []string
	Cells [][]Cell
}

// Matrix classifies every ordered pair of ids with at most workers pairs in
// flight. An empty ids selects every person of g in snapshot order; unknown
// ids yield "no relation found" cells. Cancelling ctx stops scheduling new
// pairs and Matrix returns the context error.
func Matrix(ctx context.Context, g *family.Graph, ids []string, workers int) (*Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(ids) == 0 {
		ids = g.PersonIDs()
	}
	if workers < 1 {
		workers = 1
	}

	c := kinship.New(g)
	t := &Table{IDs: ids, Cells: make([][]Cell, len(ids))}
	for i := range t.Cells {
		t.Cells[i] = make([]Cell, len(ids))
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
schedule:
	for i, s := range ids {
		for j, d := range ids {
			if gctx.Err() != nil {
				break schedule
			}
			eg.Go(func() error {
				p, err := bfs.ShortestPath(g, s, d)
				if err != nil {
					return fmt.Errorf("report: %s -> %s: %w", s, d, err)
				}
				t.Cells[i][j] = Cell{
					Source:   s,
					Target:   d,
					Hops:     p.Len(),
					Relation: c.Classify(p, s, d),
					Sentence: c.Describe(p, s, d),
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// Found returns the number of off-diagonal cells with an established relation.
func (t *Table) Found() int {
	n := 0
	for i, row := range t.Cells {
		for j, cell := range row {
			if i != j && cell.Relation.Found() {
				n++
			}
		}
	}

	return n
}
