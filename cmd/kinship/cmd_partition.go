package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/prim_kruskal"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/report"
)

func (a *app) mstCmd() *cobra.Command {
	var method, root string
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree of the family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			tree, total, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(root))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range tree {
				fmt.Fprintf(out, "%s\t%s -> %s\t%s\t%d\n", e.ID, e.From, e.To, e.Kind, e.Weight)
			}
			fmt.Fprintf(out, "total weight %d, %d edges\n", total, len(tree))
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodPrim, "prim or kruskal")
	cmd.Flags().StringVar(&root, "root", "", "Prim start person (default: first person)")

	return cmd
}

func (a *app) partitionCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Split the family into subfamilies along its weakest ties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("subfamilies") {
				k = a.cfg.Query.Subfamilies
			}
			g, err := a.load()
			if err != nil {
				return err
			}
			p, err := prim_kruskal.PartitionIntoSubfamilies(g, k)
			if err != nil {
				return err
			}
			a.log.Debug("partitioned", slog.Int("requested", k), slog.Int("subfamilies", p.Len()), slog.Int("cut", len(p.Removed)))

			out := cmd.OutOrStdout()
			for _, sf := range p.Subfamilies {
				fmt.Fprintf(out, "subfamily %d: %s (%d relationships)\n", sf.Index, strings.Join(sf.Members, ", "), len(sf.Relationships))
			}
			for _, e := range p.Removed {
				fmt.Fprintf(out, "cut %s: %s -> %s (weight %d)\n", e.ID, e.From, e.To, e.Weight)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "subfamilies", "k", 0, "number of subfamilies (default from KINSHIP_SUBFAMILIES)")

	return cmd
}

func (a *app) matrixCmd() *cobra.Command {
	var (
		workers int
		ids     []string
	)
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Kinship label of every ordered pair of persons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Query.Workers
			}
			g, err := a.load()
			if err != nil {
				return err
			}
			tbl, err := report.Matrix(cmd.Context(), g, ids, workers)
			if err != nil {
				return err
			}
			a.log.Debug("matrix built", slog.Int("persons", len(tbl.IDs)), slog.Int("related_pairs", tbl.Found()))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "source\\target\t%s\n", strings.Join(tbl.IDs, "\t"))
			for i, row := range tbl.Cells {
				labels := make([]string, len(row))
				for j, c := range row {
					labels[j] = c.Relation.Label
				}
				fmt.Fprintf(tw, "%s\t%s\n", tbl.IDs[i], strings.Join(labels, "\t"))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "pairs classified concurrently (default from KINSHIP_WORKERS)")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "restrict to these person IDs")

	return cmd
}
