package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/dfs"
)

func (a *app) lineageCmd() *cobra.Command {
	var (
		descendants bool
		generations int
	)
	cmd := &cobra.Command{
		Use:   "lineage PERSON",
		Short: "Ancestors (or descendants) of a person, one generation per indent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			walk := dfs.Ancestors
			if descendants {
				walk = dfs.Descendants
			}
			out := cmd.OutOrStdout()
			visit := func(id string, depth int) error {
				name := id
				if p, ok := g.Person(id); ok {
					name = p.DisplayName()
				}
				_, err := fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), name)
				return err
			}
			opts := []dfs.Option{dfs.WithContext(cmd.Context()), dfs.WithOnVisit(visit)}
			if generations > 0 {
				opts = append(opts, dfs.WithMaxDepth(generations))
			}
			_, err = walk(g, args[0], opts...)
			return err
		},
	}
	cmd.Flags().BoolVar(&descendants, "descendants", false, "walk towards children instead of parents")
	cmd.Flags().IntVar(&generations, "generations", 0, "stop after this many generations (0 = all)")

	return cmd
}
