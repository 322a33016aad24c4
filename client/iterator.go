package client

import (
	"context"

	"github.com/billmate/billmate-go/models"
)

// pageFetcher loads one page of a collection. Page numbering starts at 1.
type pageFetcher[T any] func(ctx context.Context, page int) (*models.Page[T], error)

// Iterator walks a paginated collection page by page.
//
//	it := adapter.IterateAccountEntities(accountID, filter)
//	for it.Next(ctx) {
//	    use(it.Item())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T any] struct {
	fetch pageFetcher[T]
	page  int
	seen  int
	total int
	items []T
	index int
	err   error
	done  bool
}

// NewIterator creates an iterator over fetch.
func NewIterator[T any](fetch pageFetcher[T]) *Iterator[T] {
	return &Iterator[T]{
		fetch: fetch,
		index: -1,
	}
}

// Next advances the iterator, fetching the next page when the current one
// is exhausted. It returns false at the end of the collection or on error.
// Exhaustion is decided by the reported collection total, not by page
// length: the server chooses the effective page size, so a page shorter
// than requested proves nothing. A server that reports no total costs one
// trailing empty-page fetch.
func (it *Iterator[T]) Next(ctx context.Context) bool {
	if it.err != nil || it.done {
		return false
	}

	if it.index < len(it.items)-1 {
		it.index++
		return true
	}

	if it.page > 0 && it.total > 0 && it.seen >= it.total {
		it.done = true
		return false
	}

	it.page++
	page, err := it.fetch(ctx, it.page)
	if err != nil {
		it.err = err
		return false
	}

	if len(page.Items) == 0 {
		it.done = true
		return false
	}

	it.items = page.Items
	it.seen += len(page.Items)
	it.total = page.Total
	it.index = 0
	return true
}

// Item returns the element the iterator currently points at.
func (it *Iterator[T]) Item() T {
	var zero T
	if it.index < 0 || it.index >= len(it.items) {
		return zero
	}
	return it.items[it.index]
}

// Err returns any error that occurred during iteration.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Collect fetches all remaining items and returns them as a slice.
func (it *Iterator[T]) Collect(ctx context.Context) ([]T, error) {
	var all []T
	for it.Next(ctx) {
		all = append(all, it.Item())
	}
	return all, it.Err()
}
