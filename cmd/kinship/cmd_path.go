package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/bfs"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/kinship"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/search"
)

func (a *app) pathCmd() *cobra.Command {
	var (
		maxDepth int
		kinds    []string
	)
	cmd := &cobra.Command{
		Use:   "path SOURCE TARGET",
		Short: "Fewest-relationships path between two persons",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			ks, err := parseKinds(kinds)
			if err != nil {
				return err
			}
			p, err := bfs.ShortestPath(g, args[0], args[1], bfs.WithMaxDepth(maxDepth), bfs.WithKinds(ks...))
			if err != nil {
				return err
			}
			a.log.Debug("unweighted path", slog.String("source", args[0]), slog.String("target", args[1]), slog.Int("hops", p.Len()))

			out := cmd.OutOrStdout()
			if p.Empty() {
				fmt.Fprintln(out, "no path")
				return nil
			}
			fmt.Fprintf(out, "%s (%d hops)\n", formatPath(g, p), p.Len())
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many relationships (0 = unlimited)")
	cmd.Flags().StringSliceVar(&kinds, "kinds", nil, "only walk these relationship kinds")

	return cmd
}

func (a *app) weightedCmd() *cobra.Command {
	var (
		algorithm    string
		connectivity bool
	)
	cmd := &cobra.Command{
		Use:   "weighted SOURCE TARGET",
		Short: "Minimum-weight path between two persons",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg := a.cfg.Query.Algorithm
			if cmd.Flags().Changed("algorithm") {
				var err error
				if alg, err = search.ParseAlgorithm(algorithm); err != nil {
					return err
				}
			}
			g, err := a.load()
			if err != nil {
				return err
			}
			var opts []family.ViewOption
			if connectivity {
				opts = append(opts, family.WithConnectivity())
			}
			res, err := search.Weighted(family.BuildAdjacency(g, opts...), args[0], args[1], g.Relationships(), alg)
			if err != nil {
				return err
			}
			a.log.Debug("weighted path", slog.String("algorithm", alg.String()), slog.Bool("negative_cycle", res.NegativeCycle))

			out := cmd.OutOrStdout()
			switch {
			case res.NegativeCycle:
				fmt.Fprintln(out, "negative cycle reachable from source")
			case !res.Reachable():
				fmt.Fprintln(out, "no path")
			default:
				fmt.Fprintf(out, "%s (weight %d)\n", formatPath(g, *res.Path), res.Path.Weight)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "dijkstra or bellman-ford (default from KINSHIP_ALGORITHM)")
	cmd.Flags().BoolVar(&connectivity, "connectivity", false, "walk every relationship in both directions")

	return cmd
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe SOURCE TARGET",
		Short: "How TARGET is related to SOURCE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			p, err := bfs.ShortestPath(g, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kinship.Describe(g, p, args[0], args[1]))
			return nil
		},
	}
}
