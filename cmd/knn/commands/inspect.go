package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RiswanBasha/knn/exemplar"
	"github.com/RiswanBasha/knn/groupby"
)

// LabelRun summarizes one run of consecutive samples sharing a label.
type LabelRun struct {
	Label      string `yaml:"label" json:"label"`
	Samples    int    `yaml:"samples" json:"samples"`
	Stored     int    `yaml:"stored" json:"stored"`
	Duplicates int    `yaml:"duplicates" json:"duplicates"`
	Evicted    int    `yaml:"evicted" json:"evicted"`
}

// LabelSummary is the final exemplar count of one label.
type LabelSummary struct {
	Label     string `yaml:"label" json:"label"`
	Exemplars int    `yaml:"exemplars" json:"exemplars"`
}

// InspectReport is the output of the inspect command.
type InspectReport struct {
	Capacity  int            `yaml:"capacity" json:"capacity"`
	Exemplars int            `yaml:"exemplars" json:"exemplars"`
	Runs      []LabelRun     `yaml:"runs" json:"runs"`
	Labels    []LabelSummary `yaml:"labels" json:"labels"`
}

func newInspectCommand(g *globalFlags) *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report how dataset samples land in the exemplar store",
		Long: `Learn the dataset samples in file order and report, for every run of
consecutive samples with the same label, how many were stored, skipped as
duplicates or caused an eviction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := loadDataset(g.inputFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("capacity") && ds.Capacity != nil {
				capacity = *ds.Capacity
			}
			if capacity < 0 {
				return fmt.Errorf("capacity must not be negative, got %d", capacity)
			}

			report, err := inspect(ds.Samples, exemplar.NewStore(capacity))
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), report, g.outputJSON)
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", exemplar.DefaultCapacity, "per-label exemplar retention limit")
	return cmd
}

func inspect(samples []Sample, store *exemplar.Store) (*InspectReport, error) {
	report := &InspectReport{Capacity: store.Capacity()}

	byLabel := groupby.New(samples, func(s Sample) string { return s.Label })
	next := 0
	for label, run := range groupby.Groups(byLabel) {
		lr := LabelRun{Label: label, Samples: len(run)}
		for _, s := range run {
			if s.Positions == nil {
				return nil, fmt.Errorf("sample %d (%s): positions are missing", next, label)
			}
			next++

			res := store.Learn(s.Label, s.Positions)
			switch {
			case !res.Stored:
				lr.Duplicates++
			case res.Evicted:
				lr.Stored++
				lr.Evicted++
			default:
				lr.Stored++
			}
		}
		report.Runs = append(report.Runs, lr)
	}

	for _, label := range store.Labels() {
		report.Labels = append(report.Labels, LabelSummary{
			Label:     label,
			Exemplars: len(store.Exemplars(label)),
		})
	}
	report.Exemplars = store.Len()
	return report, nil
}
