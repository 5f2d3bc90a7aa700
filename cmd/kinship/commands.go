package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/dfs"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/internal/config"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/snapshot"
)

// app carries what every subcommand needs.
type app struct {
	cfg        config.Config
	log        *slog.Logger
	familyPath string
}

func newRootCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:   "kinship",
		Short: "Kinship labels, relationship paths and subfamilies of a family snapshot",
		Long: `kinship loads a family snapshot (YAML or JSON) and answers
queries over it: how two persons are related, the closest relationship path
between them, the minimal connecting skeleton of the family and its split
into subfamilies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.familyPath, "family", "f", "", "family snapshot file (YAML or JSON)")
	_ = root.MarkPersistentFlagRequired("family")

	root.AddCommand(
		a.pathCmd(),
		a.weightedCmd(),
		a.describeCmd(),
		a.mstCmd(),
		a.partitionCmd(),
		a.matrixCmd(),
		a.lineageCmd(),
	)

	return root
}

// load reads the snapshot named by --family and logs what it dropped.
func (a *app) load() (*family.Graph, error) {
	g, err := snapshot.Load(a.familyPath)
	if err != nil {
		return nil, err
	}
	if an := g.Anomalies(); an.Total() > 0 {
		a.log.Warn("snapshot records dropped",
			slog.String("file", a.familyPath),
			slog.Int("duplicate_persons", an.DuplicatePersons),
			slog.Int("empty_person_ids", an.EmptyPersonIDs),
			slog.Int("duplicate_relationships", an.DuplicateRelationships),
			slog.Int("dangling_relationships", an.DanglingRelationships))
	}
	for _, c := range dfs.LineageCycles(g) {
		a.log.Warn("person recorded as their own ancestor", slog.String("cycle", strings.Join(c, " -> ")))
	}
	a.log.Debug("snapshot loaded",
		slog.String("file", a.familyPath),
		slog.Int("persons", g.PersonCount()),
		slog.Int("relationships", g.RelationshipCount()))

	return g, nil
}

func parseKinds(names []string) ([]family.Kind, error) {
	kinds := make([]family.Kind, 0, len(names))
	for _, n := range names {
		k, err := family.ParseKind(n)
		if err != nil {
			return nil, fmt.Errorf("--kinds %q: %w", n, err)
		}
		kinds = append(kinds, k)
	}

	return kinds, nil
}

func formatPath(g *family.Graph, p family.Path) string {
	names := make([]string, len(p.PersonIDs))
	for i, id := range p.PersonIDs {
		names[i] = id
		if person, ok := g.Person(id); ok {
			names[i] = person.DisplayName()
		}
	}

	return strings.Join(names, " -> ")
}
