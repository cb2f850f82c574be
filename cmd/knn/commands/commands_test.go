package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiswanBasha/knn"
)

const animalsYAML = `
neighbors: 4
samples:
  - label: cat
    positions: [1, 2, 3]
  - label: cat
    positions: [1, 2, 3]
  - label: dog
    positions: [10, 11, 12]
  - label: cat
    positions: [2, 3, 4]
queries:
  - name: near-cat
    positions: [2]
  - name: near-dog
    positions: [11, 30]
    max_results: 2
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLoadDataset(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		ds, err := loadDataset(writeFile(t, "ds.yaml", animalsYAML))
		require.NoError(t, err)
		assert.Equal(t, 4, ds.Neighbors)
		assert.Nil(t, ds.Capacity)
		require.Len(t, ds.Samples, 4)
		assert.Equal(t, Sample{Label: "dog", Positions: []int{10, 11, 12}}, ds.Samples[2])
		require.Len(t, ds.Queries, 2)
		assert.Equal(t, 2, ds.Queries[1].MaxResults)
	})

	t.Run("JSON", func(t *testing.T) {
		ds, err := loadDataset(writeFile(t, "ds.json", `{"capacity": 0, "samples": [{"label": "a", "positions": [4]}]}`))
		require.NoError(t, err)
		require.NotNil(t, ds.Capacity)
		assert.Equal(t, 0, *ds.Capacity)
		assert.Equal(t, []Sample{{Label: "a", Positions: []int{4}}}, ds.Samples)
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		ds, err := loadDataset(writeFile(t, "ds.txt", animalsYAML))
		require.NoError(t, err)
		assert.Len(t, ds.Samples, 4)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := loadDataset("")
		assert.Error(t, err)
		_, err = loadDataset(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := loadDataset(writeFile(t, "ds.json", `{"samples": [`))
		assert.Error(t, err)
	})
}

func TestParsePositions(t *testing.T) {
	got, err := parsePositions(" 1, 2 ,30")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 30}, got)

	got, err = parsePositions("")
	require.NoError(t, err)
	assert.Equal(t, []int{}, got)

	_, err = parsePositions("1,x")
	assert.Error(t, err)
}

func TestClassifyCommand(t *testing.T) {
	path := writeFile(t, "ds.yaml", animalsYAML)

	t.Run("DatasetQueries", func(t *testing.T) {
		out, err := run(t, "classify", "-f", path, "--json")
		require.NoError(t, err)

		var reports []ClassifyReport
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		require.Len(t, reports, 2)
		assert.Equal(t, "near-cat", reports[0].Query)
		assert.Equal(t, []string{"cat"}, reports[0].Labels)
		assert.Equal(t, []string{"dog", "cat"}, reports[1].Labels)
		assert.Empty(t, reports[0].Neighbors)
	})

	t.Run("AdHocQueryWithExplain", func(t *testing.T) {
		out, err := run(t, "classify", "-f", path, "-q", "4", "-n", "3", "--explain", "--json")
		require.NoError(t, err)

		var reports []ClassifyReport
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		require.Len(t, reports, 1)
		assert.Equal(t, "arg-0", reports[0].Query)
		assert.Equal(t, []string{"cat", "cat", "dog"}, reports[0].Labels)
		require.Len(t, reports[0].Neighbors, 3)
		assert.Equal(t, NeighborReport{Label: "cat", Position: 4, Distance: 0, Ordinal: 1}, reports[0].Neighbors[0])
		assert.Equal(t, NeighborReport{Label: "cat", Position: 4, Distance: 1, Ordinal: 0}, reports[0].Neighbors[1])
	})

	t.Run("NeighborsFlagOverridesDataset", func(t *testing.T) {
		out, err := run(t, "classify", "-f", path, "-q", "4", "-n", "5", "-k", "1", "--json")
		require.NoError(t, err)

		var reports []ClassifyReport
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		assert.Equal(t, []string{"cat"}, reports[0].Labels)
	})

	t.Run("YAMLOutput", func(t *testing.T) {
		out, err := run(t, "classify", "-f", path)
		require.NoError(t, err)

		var reports []ClassifyReport
		require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
		require.Len(t, reports, 2)
		assert.Equal(t, []string{"cat"}, reports[0].Labels)
	})

	t.Run("InvalidNeighbors", func(t *testing.T) {
		_, err := run(t, "classify", "-f", path, "-k", "0")
		assert.ErrorIs(t, err, knn.ErrInvalidArgument)
	})

	t.Run("NoQueries", func(t *testing.T) {
		p := writeFile(t, "noq.yaml", "samples:\n  - label: a\n    positions: [1]\n")
		_, err := run(t, "classify", "-f", p)
		assert.ErrorContains(t, err, "no queries")
	})

	t.Run("SampleWithoutPositions", func(t *testing.T) {
		p := writeFile(t, "bad.yaml", "samples:\n  - label: a\nqueries:\n  - positions: [1]\n")
		_, err := run(t, "classify", "-f", p)
		assert.ErrorIs(t, err, knn.ErrInvalidArgument)
	})
}

func TestInspectCommand(t *testing.T) {
	path := writeFile(t, "ds.yaml", animalsYAML)

	out, err := run(t, "inspect", "-f", path, "--json")
	require.NoError(t, err)

	var report InspectReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 20, report.Capacity)
	assert.Equal(t, 3, report.Exemplars)
	assert.Equal(t, []LabelRun{
		{Label: "cat", Samples: 2, Stored: 1, Duplicates: 1},
		{Label: "dog", Samples: 1, Stored: 1},
		{Label: "cat", Samples: 1, Stored: 1},
	}, report.Runs)
	assert.Equal(t, []LabelSummary{
		{Label: "cat", Exemplars: 2},
		{Label: "dog", Exemplars: 1},
	}, report.Labels)
}

func TestInspectEviction(t *testing.T) {
	path := writeFile(t, "ds.yaml", `
capacity: 1
samples:
  - {label: a, positions: [1]}
  - {label: a, positions: [2]}
  - {label: a, positions: [3]}
`)

	out, err := run(t, "inspect", "-f", path, "--json")
	require.NoError(t, err)

	var report InspectReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, []LabelRun{{Label: "a", Samples: 3, Stored: 3, Evicted: 1}}, report.Runs)
	assert.Equal(t, 2, report.Exemplars)

	_, err = run(t, "inspect", "-f", path, "--capacity=-1")
	assert.Error(t, err)
}
