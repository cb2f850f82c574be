package knn

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/RiswanBasha/knn/distance"
	"github.com/RiswanBasha/knn/exemplar"
	"github.com/RiswanBasha/knn/internal/rank"
)

// Result is one predicted label.
//
// Similarity and SharedBits are reserved and always zero.
type Result[T any] struct {
	Label      T
	Similarity float64
	SharedBits int
}

// Neighbor is a ranked candidate: one exemplar's distance to one query
// position.
type Neighbor = rank.Candidate

// Classifier labels active-position sets by their positional distance to
// learned exemplars.
type Classifier[T any] struct {
	parse       LabelParser[T]
	store       *exemplar.Store
	neighbors   int
	parallelism int
	metrics     MetricsCollector
	logger      *Logger
}

// New creates a classifier whose labels are converted with parse.
func New[T any](parse LabelParser[T], optFns ...Option) (*Classifier[T], error) {
	opts := applyOptions(optFns)

	if parse == nil {
		return nil, fmt.Errorf("%w: label parser must not be nil", ErrInvalidArgument)
	}
	if opts.neighbors < 1 {
		return nil, fmt.Errorf("%w: neighbors must be positive, got %d", ErrInvalidArgument, opts.neighbors)
	}
	if opts.parallelism < 1 {
		return nil, fmt.Errorf("%w: parallelism must be positive, got %d", ErrInvalidArgument, opts.parallelism)
	}

	store := opts.store
	if store == nil {
		if opts.capacity < 0 {
			return nil, fmt.Errorf("%w: capacity must not be negative, got %d", ErrInvalidArgument, opts.capacity)
		}
		store = exemplar.NewStore(opts.capacity)
	}

	return &Classifier[T]{
		parse:       parse,
		store:       store,
		neighbors:   opts.neighbors,
		parallelism: opts.parallelism,
		metrics:     opts.metricsCollector,
		logger:      opts.logger.WithK(opts.neighbors),
	}, nil
}

// Store returns the exemplar store the classifier reads and writes.
func (c *Classifier[T]) Store() *exemplar.Store {
	return c.store
}

// NumNeighbors returns the global candidate cutoff.
func (c *Classifier[T]) NumNeighbors() int {
	return c.neighbors
}

// Learn records the positions of cells as an exemplar of label.
func (c *Classifier[T]) Learn(label string, cells []Cell) error {
	positions, err := Indices(cells)
	if err != nil {
		c.metrics.RecordLearn(0, false, err)
		c.logger.LogLearn(label, 0, false, false, err)
		return err
	}
	return c.LearnPositions(label, positions)
}

// LearnPositions records positions as an exemplar of label.
//
// Learning a sequence already stored under label is a no-op. Otherwise the
// label's oldest exemplar is evicted first when the label is over capacity.
func (c *Classifier[T]) LearnPositions(label string, positions []int) error {
	start := time.Now()
	if positions == nil {
		err := fmt.Errorf("%w: positions must not be nil", ErrInvalidArgument)
		c.metrics.RecordLearn(time.Since(start), false, err)
		c.logger.LogLearn(label, 0, false, false, err)
		return err
	}

	res := c.store.Learn(label, positions)
	c.metrics.RecordLearn(time.Since(start), res.Stored, nil)
	c.logger.LogLearn(label, len(positions), res.Stored, res.Evicted, nil)
	return nil
}

// Classify predicts up to maxResults labels for the positions of cells.
//
// An empty cells slice or an empty store yields an empty result. If any
// surviving candidate's label cannot be converted the call fails with an
// error matching ErrTypeConversion and no results.
func (c *Classifier[T]) Classify(cells []Cell, maxResults int) ([]Result[T], error) {
	positions, err := Indices(cells)
	if err != nil {
		c.metrics.RecordClassify(maxResults, 0, 0, err)
		c.logger.LogClassify(0, maxResults, 0, err)
		return nil, err
	}
	return c.ClassifyPositions(positions, maxResults)
}

// ClassifyPositions is Classify for raw positions.
func (c *Classifier[T]) ClassifyPositions(positions []int, maxResults int) ([]Result[T], error) {
	start := time.Now()
	results, err := c.classify(positions, maxResults)
	c.metrics.RecordClassify(maxResults, len(results), time.Since(start), err)
	c.logger.LogClassify(len(positions), maxResults, len(results), err)
	return results, err
}

func (c *Classifier[T]) classify(positions []int, maxResults int) ([]Result[T], error) {
	if positions == nil {
		return nil, fmt.Errorf("%w: positions must not be nil", ErrInvalidArgument)
	}
	if maxResults < 0 {
		return nil, fmt.Errorf("%w: maxResults must not be negative, got %d", ErrInvalidArgument, maxResults)
	}

	nearest := c.nearest(positions)
	results := make([]Result[T], 0, len(nearest))
	for _, n := range nearest {
		label, err := c.parse(n.Label)
		if err != nil {
			return nil, &ConversionError{Label: n.Label, cause: err}
		}
		results = append(results, Result[T]{Label: label})
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// Nearest returns the candidates that survive the global cutoff, in the order
// Classify would convert them.
func (c *Classifier[T]) Nearest(cells []Cell) ([]Neighbor, error) {
	positions, err := Indices(cells)
	if err != nil {
		return nil, err
	}
	return c.nearest(positions), nil
}

func (c *Classifier[T]) nearest(query []int) []Neighbor {
	if len(query) == 0 {
		return nil
	}

	r := rank.New()
	if c.parallelism > 1 {
		refs := slices.Collect(c.store.All())
		tables := c.tables(refs, query)
		for i, ref := range refs {
			r.Add(ref.Label, ref.Ordinal, tables[i])
		}
	} else {
		for ref := range c.store.All() {
			r.Add(ref.Label, ref.Ordinal, ref.Exemplar.Table(query))
		}
	}
	return r.Top(c.neighbors)
}

// tables computes the distance table of every ref concurrently.
// tables[i] belongs to refs[i].
func (c *Classifier[T]) tables(refs []exemplar.Ref, query []int) []distance.Table {
	tables := make([]distance.Table, len(refs))

	var g errgroup.Group
	g.SetLimit(c.parallelism)
	for i, ref := range refs {
		g.Go(func() error {
			tables[i] = ref.Exemplar.Table(query)
			return nil
		})
	}
	_ = g.Wait()

	return tables
}

// ClearState removes every learned exemplar.
func (c *Classifier[T]) ClearState() {
	n := c.store.Len()
	c.store.Clear()
	c.metrics.RecordClear()
	c.logger.LogClear(n)
}
