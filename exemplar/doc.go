// Package exemplar implements the bounded store of learned exemplars.
//
// An exemplar is one learned sequence of active positions associated with a
// label. The store keeps, per label, an insertion-ordered list of distinct
// exemplars and evicts the oldest one first once the list grows past the
// configured capacity.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must serialize Learn, Clear and reads themselves.
package exemplar
