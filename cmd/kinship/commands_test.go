package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/dfs"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/internal/config"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/search"
)

const familyYAML = `
persons:
  - {id: mara, name: Mara, gender: female}
  - {id: jon, name: Jon, gender: male}
  - {id: ivy, name: Ivy, gender: female}
  - {id: theo, name: Theo, gender: male}
  - {id: ada, name: Ada, gender: female}
  - {id: ben, name: Ben, gender: male}
relationships:
  - {id: r1, from: mara, to: jon, type: parent-child}
  - {id: r2, from: jon, to: ivy, type: spouse, weight: 2}
  - {id: r3, from: jon, to: theo, type: parent-child}
  - {id: r4, from: ivy, to: theo, type: parent-child}
  - {id: r5, from: ada, to: ben, type: spouse}
  - {id: r6, from: ivy, to: ada, type: sibling, weight: 6}
  - {id: r7, from: ben, to: nobody, type: other}
`

func writeFamily(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "family.yaml")
	require.NoError(t, os.WriteFile(path, []byte(familyYAML), 0o600))

	return path
}

func testConfig() config.Config {
	return config.Config{
		Query:   config.QueryConfig{Algorithm: search.Dijkstra, Workers: 2, Subfamilies: 2},
		Logging: config.LoggingConfig{Level: "info", Format: "text"},
	}
}

// run executes the CLI and returns stdout and the log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	cmd := newRootCmd(testConfig(), log)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), logs.String(), err
}

func TestDescribe(t *testing.T) {
	f := writeFamily(t)

	out, logs, err := run(t, "describe", "theo", "mara", "--family", f)
	require.NoError(t, err)
	assert.Equal(t, "Mara is the grandmother of Theo\n", out)
	assert.Contains(t, logs, "dangling_relationships=1")

	out, _, err = run(t, "describe", "jon", "ada", "-f", f)
	require.NoError(t, err)
	assert.Equal(t, "Ada is the sister-in-law of Jon\n", out)
}

func TestPath(t *testing.T) {
	f := writeFamily(t)

	out, _, err := run(t, "path", "mara", "ivy", "--family", f)
	require.NoError(t, err)
	assert.Equal(t, "Mara -> Jon -> Ivy (2 hops)\n", out)

	out, _, err = run(t, "path", "mara", "ivy", "--family", f, "--kinds", "parent-child")
	require.NoError(t, err)
	assert.Equal(t, "Mara -> Jon -> Theo -> Ivy (3 hops)\n", out)

	_, _, err = run(t, "path", "mara", "ivy", "--family", f, "--kinds", "friend")
	assert.Error(t, err)
}

func TestWeighted(t *testing.T) {
	f := writeFamily(t)

	out, _, err := run(t, "weighted", "jon", "ivy", "--family", f)
	require.NoError(t, err)
	assert.Equal(t, "Jon -> Ivy (weight 2)\n", out)

	out, _, err = run(t, "weighted", "theo", "mara", "--family", f)
	require.NoError(t, err)
	assert.Equal(t, "no path\n", out)

	out, _, err = run(t, "weighted", "theo", "mara", "--family", f, "--connectivity", "--algorithm", "bellman-ford")
	require.NoError(t, err)
	assert.Equal(t, "Theo -> Jon -> Mara (weight 2)\n", out)

	_, _, err = run(t, "weighted", "theo", "mara", "--family", f, "--algorithm", "astar")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestMSTAndPartition(t *testing.T) {
	f := writeFamily(t)

	out, _, err := run(t, "mst", "--family", f, "--method", "kruskal")
	require.NoError(t, err)
	assert.Contains(t, out, "total weight 10, 5 edges")

	out, _, err = run(t, "partition", "--family", f)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"subfamily 0: mara, jon, ivy, theo (4 relationships)",
		"subfamily 1: ada, ben (1 relationships)",
		"cut r6: ivy -> ada (weight 6)",
	}, "\n")+"\n", out)

	out, _, err = run(t, "partition", "--family", f, "-k", "1")
	require.NoError(t, err)
	assert.Equal(t, "subfamily 0: mara, jon, ivy, theo, ada, ben (6 relationships)\n", out)
}

func TestMatrix(t *testing.T) {
	f := writeFamily(t)
	out, _, err := run(t, "matrix", "--family", f, "--ids", "theo,jon")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "same person")
	assert.Contains(t, lines[1], "father")
	assert.Contains(t, lines[2], "son")
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "describe", "a", "b")
	assert.Error(t, err, "--family is required")

	_, _, err = run(t, "describe", "a", "b", "--family", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "describe", "only-one", "--family", writeFamily(t))
	assert.Error(t, err)
}

func TestLineage(t *testing.T) {
	f := writeFamily(t)

	out, _, err := run(t, "lineage", "theo", "--family", f)
	require.NoError(t, err)
	assert.Equal(t, "Theo\n  Jon\n    Mara\n  Ivy\n", out)

	out, _, err = run(t, "lineage", "mara", "--descendants", "--generations", "1", "--family", f)
	require.NoError(t, err)
	assert.Equal(t, "Mara\n  Jon\n", out)

	_, _, err = run(t, "lineage", "ghost", "--family", f)
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
}

func TestLoad_WarnsOnLineageCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.yaml")
	doc := "persons: [{id: a}, {id: b}]\nrelationships:\n  - {from: a, to: b, type: parent-child}\n  - {from: b, to: a, type: parent-child}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, logs, err := run(t, "describe", "a", "b", "--family", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "their own ancestor")
	assert.Contains(t, logs, "a -> b -> a")
}
