package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	inputFile  string
	outputJSON bool
	verbose    bool
}

// NewRootCommand builds the knn command tree.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "knn",
		Short: "Positional nearest-neighbor classifier for sparse active-position sets",
		Long: `knn learns labeled sets of active positions and labels new sets by the
distance of each query position to the nearest learned position.

Examples:
  # Learn the samples of a dataset and classify its queries
  knn classify -f dataset.yaml

  # Classify an ad hoc query against the dataset's samples
  knn classify -f dataset.yaml --query 2,7,9 --max-results 3

  # See how samples are deduplicated and evicted per label
  knn inspect -f dataset.yaml --json
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initLogging(g.verbose)
		},
	}

	root.PersistentFlags().StringVarP(&g.inputFile, "file", "f", "", "dataset file (YAML or JSON)")
	root.PersistentFlags().BoolVar(&g.outputJSON, "json", false, "output as JSON (for piping)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newClassifyCommand(g))
	root.AddCommand(newInspectCommand(g))
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func initLogging(verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}
