package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/RiswanBasha/knn"
	"github.com/RiswanBasha/knn/exemplar"
)

type classifyFlags struct {
	neighbors   int
	capacity    int
	parallelism int
	maxResults  int
	queries     []string
	explain     bool
}

// ClassifyReport is the output for one query.
type ClassifyReport struct {
	Query     string           `yaml:"query,omitempty" json:"query,omitempty"`
	Positions []int            `yaml:"positions" json:"positions"`
	Labels    []string         `yaml:"labels" json:"labels"`
	Neighbors []NeighborReport `yaml:"neighbors,omitempty" json:"neighbors,omitempty"`
}

// NeighborReport is one candidate that survived the neighbor cutoff.
type NeighborReport struct {
	Label    string `yaml:"label" json:"label"`
	Position int    `yaml:"position" json:"position"`
	Distance int    `yaml:"distance" json:"distance"`
	Ordinal  int    `yaml:"ordinal" json:"ordinal"`
}

func newClassifyCommand(g *globalFlags) *cobra.Command {
	f := &classifyFlags{}

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Learn the dataset samples and classify queries",
		Long: `Learn every sample of the dataset in file order, then classify each query.

Queries come from the dataset unless --query is given. Flags override the
neighbors, capacity and parallelism values of the dataset header.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClassify(cmd, g, f)
		},
	}

	cmd.Flags().IntVarP(&f.neighbors, "neighbors", "k", knn.DefaultNeighbors, "global candidate cutoff")
	cmd.Flags().IntVar(&f.capacity, "capacity", exemplar.DefaultCapacity, "per-label exemplar retention limit")
	cmd.Flags().IntVar(&f.parallelism, "parallelism", 1, "goroutines used per classification")
	cmd.Flags().IntVarP(&f.maxResults, "max-results", "n", 1, "results per query")
	cmd.Flags().StringArrayVarP(&f.queries, "query", "q", nil, "comma-separated query positions (repeatable)")
	cmd.Flags().BoolVar(&f.explain, "explain", false, "include the ranked neighbors of each query")
	return cmd
}

func runClassify(cmd *cobra.Command, g *globalFlags, f *classifyFlags) error {
	ds, err := loadDataset(g.inputFile)
	if err != nil {
		return err
	}

	clf, err := knn.New(knn.StringLabel, classifierOptions(cmd, ds, f)...)
	if err != nil {
		return err
	}
	for i, s := range ds.Samples {
		if err := clf.LearnPositions(s.Label, s.Positions); err != nil {
			return fmt.Errorf("sample %d (%s): %w", i, s.Label, err)
		}
	}

	queries, err := resolveQueries(ds, f)
	if err != nil {
		return err
	}

	reports := make([]ClassifyReport, 0, len(queries))
	for i, q := range queries {
		name := q.Name
		if name == "" {
			name = fmt.Sprintf("query-%d", i)
		}

		maxResults := f.maxResults
		if !cmd.Flags().Changed("max-results") && q.MaxResults > 0 {
			maxResults = q.MaxResults
		}

		results, err := clf.ClassifyPositions(q.Positions, maxResults)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		rep := ClassifyReport{
			Query:     name,
			Positions: q.Positions,
			Labels:    make([]string, len(results)),
		}
		for j, r := range results {
			rep.Labels[j] = r.Label
		}
		if f.explain {
			nearest, err := clf.Nearest(knn.Positions(q.Positions...))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			for _, n := range nearest {
				rep.Neighbors = append(rep.Neighbors, NeighborReport{
					Label:    n.Label,
					Position: n.Position,
					Distance: n.Distance,
					Ordinal:  n.Ordinal,
				})
			}
		}
		reports = append(reports, rep)
	}

	return writeOutput(cmd.OutOrStdout(), reports, g.outputJSON)
}

func classifierOptions(cmd *cobra.Command, ds *Dataset, f *classifyFlags) []knn.Option {
	opts := []knn.Option{
		knn.WithLogger(knn.NewLogger(slog.Default().Handler())),
	}

	switch {
	case cmd.Flags().Changed("neighbors"):
		opts = append(opts, knn.WithNeighbors(f.neighbors))
	case ds.Neighbors > 0:
		opts = append(opts, knn.WithNeighbors(ds.Neighbors))
	}

	switch {
	case cmd.Flags().Changed("capacity"):
		opts = append(opts, knn.WithCapacity(f.capacity))
	case ds.Capacity != nil:
		opts = append(opts, knn.WithCapacity(*ds.Capacity))
	}

	switch {
	case cmd.Flags().Changed("parallelism"):
		opts = append(opts, knn.WithParallelism(f.parallelism))
	case ds.Parallelism > 0:
		opts = append(opts, knn.WithParallelism(ds.Parallelism))
	}
	return opts
}

func resolveQueries(ds *Dataset, f *classifyFlags) ([]Query, error) {
	if len(f.queries) == 0 {
		if len(ds.Queries) == 0 {
			return nil, fmt.Errorf("no queries: add a queries section to the dataset or use --query")
		}
		return ds.Queries, nil
	}

	queries := make([]Query, 0, len(f.queries))
	for i, s := range f.queries {
		positions, err := parsePositions(s)
		if err != nil {
			return nil, fmt.Errorf("--query #%d: %w", i+1, err)
		}
		queries = append(queries, Query{Name: fmt.Sprintf("arg-%d", i), Positions: positions})
	}
	return queries, nil
}
