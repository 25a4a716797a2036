// Package paging drives token-continued queries against the remote record store
// and splits identifier sets into store-sized batches.
package paging

import (
	"context"
	"errors"
	"fmt"
)

const (
	// MaxPageSize is the hard per-page row limit of the record store.
	MaxPageSize = 5000
	// MaxBatchSize is the largest identifier list accepted by an "in set" lookup.
	MaxBatchSize = 500
)

var ErrInvalidPageSize = errors.New("invalid page size")

// Request is sent with every page call. ContinuationToken is empty on the first page.
type Request struct {
	PageNumber        int
	PageCount         int
	ContinuationToken string
}

// Page is one store response.
type Page[T any] struct {
	Items             []T
	MoreRecords       bool
	ContinuationToken string
}

// Fetcher executes one page of a query.
type Fetcher[T any] func(ctx context.Context, req Request) (Page[T], error)

// FetchAll runs fetch until the store reports no more records and returns the
// concatenation of every page in arrival order. The first failing page aborts the
// whole fetch; no partial result is returned.
func FetchAll[T any](ctx context.Context, pageSize int, fetch Fetcher[T]) ([]T, error) {
	if pageSize <= 0 || pageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidPageSize, pageSize, MaxPageSize)
	}

	req := Request{PageNumber: 1, PageCount: pageSize}
	var all []T
	for {
		page, err := fetch(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", req.PageNumber, err)
		}
		all = append(all, page.Items...)
		if !page.MoreRecords {
			return all, nil
		}
		req.PageNumber++
		req.ContinuationToken = page.ContinuationToken
	}
}
