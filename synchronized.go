package knn

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Synchronized serializes access to a Classifier.
//
// Every call waits for exclusive access; waiting honors ctx. Once access is
// granted the wrapped operation runs to completion.
type Synchronized[T any] struct {
	clf *Classifier[T]
	sem *semaphore.Weighted
}

// Synchronize wraps clf. Callers must not use clf directly afterwards.
func Synchronize[T any](clf *Classifier[T]) *Synchronized[T] {
	return &Synchronized[T]{
		clf: clf,
		sem: semaphore.NewWeighted(1),
	}
}

func (s *Synchronized[T]) acquire(ctx context.Context) error {
	return s.sem.Acquire(ctx, 1)
}

func (s *Synchronized[T]) release() {
	s.sem.Release(1)
}

// Learn is Classifier.Learn under exclusive access.
func (s *Synchronized[T]) Learn(ctx context.Context, label string, cells []Cell) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	return s.clf.Learn(label, cells)
}

// LearnPositions is Classifier.LearnPositions under exclusive access.
func (s *Synchronized[T]) LearnPositions(ctx context.Context, label string, positions []int) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	return s.clf.LearnPositions(label, positions)
}

// Classify is Classifier.Classify under exclusive access.
func (s *Synchronized[T]) Classify(ctx context.Context, cells []Cell, maxResults int) ([]Result[T], error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()
	return s.clf.Classify(cells, maxResults)
}

// ClassifyPositions is Classifier.ClassifyPositions under exclusive access.
func (s *Synchronized[T]) ClassifyPositions(ctx context.Context, positions []int, maxResults int) ([]Result[T], error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()
	return s.clf.ClassifyPositions(positions, maxResults)
}

// ClearState is Classifier.ClearState under exclusive access.
func (s *Synchronized[T]) ClearState(ctx context.Context) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	s.clf.ClearState()
	return nil
}
