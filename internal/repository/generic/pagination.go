package generic

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"
)

const defaultPageSize = 20

type PageRequest struct {
	// 1-based page number.
	Page     int
	PageSize int
	// Sort field in document (bson) naming; _id when empty.
	SortField string
	SortDesc  bool
}

func (p PageRequest) normalized() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.SortField == "" {
		p.SortField = "_id"
	}
	return p
}

type Page[E any] struct {
	Items      []*E
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// TotalPages computes ceil(total/pageSize) without floats.
func totalPages(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// FindWithPagination runs the count and the bounded, sorted fetch
// concurrently against the same compound query. A page past the end
// returns empty items with the total untouched.
func (r *Repository[E, D, F]) FindWithPagination(ctx context.Context, f F, req PageRequest) (*Page[E], error) {
	op := r.opts.Name + ".FindWithPagination"

	req = req.normalized()
	q := r.FilterQuery(f)

	dir := 1
	if req.SortDesc {
		dir = -1
	}
	fo := options.Find().
		SetSort(bson.D{{Key: req.SortField, Value: dir}}).
		SetSkip(int64(req.Page-1) * int64(req.PageSize)).
		SetLimit(int64(req.PageSize))

	var (
		total int64
		items []*E
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := r.coll.CountDocuments(gctx, q)
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	g.Go(func() error {
		out, err := r.findMany(gctx, q, fo)
		if err != nil {
			return err
		}
		items = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Page[E]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages(total, req.PageSize),
	}, nil
}
