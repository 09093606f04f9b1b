package generic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/query"
)

func newTestRepo(opts Options[model.ManufacturerFilter]) *Repository[model.Manufacturer, bson.M, model.ManufacturerFilter] {
	return &Repository[model.Manufacturer, bson.M, model.ManufacturerFilter]{opts: opts}
}

func TestBaseFilter(t *testing.T) {
	t.Parallel()

	t.Run("soft delete excludes marked documents", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(Options[model.ManufacturerFilter]{SoftDelete: true})
		assert.Equal(t, bson.M{"is_deleted": bson.M{"$ne": true}}, r.baseFilter())
	})

	t.Run("without soft delete reads are unrestricted", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(Options[model.ManufacturerFilter]{})
		assert.Empty(t, r.baseFilter())
	})
}

func TestIDFilter(t *testing.T) {
	t.Parallel()

	t.Run("primary field only", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(Options[model.ManufacturerFilter]{})
		assert.Equal(t, bson.M{"_id": "abc"}, r.idFilter("abc"))
	})

	t.Run("primary or secondary field", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(Options[model.ManufacturerFilter]{SecondaryIDField: "legacy_id"})
		assert.Equal(t, bson.M{"$or": []bson.M{
			{"_id": "abc"},
			{"legacy_id": "abc"},
		}}, r.idFilter("abc"))
	})
}

func TestFilterQuery(t *testing.T) {
	t.Parallel()

	t.Run("no custom filter yields the base only", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(Options[model.ManufacturerFilter]{SoftDelete: true})
		assert.Equal(t, query.NotDeleted(), r.FilterQuery(model.ManufacturerFilter{}))
	})

	t.Run("custom or group merges beside the base predicate", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(Options[model.ManufacturerFilter]{
			SoftDelete: true,
			CustomFilter: func(f model.ManufacturerFilter) bson.M {
				return query.Access(f.Scope)
			},
		})

		got := r.FilterQuery(model.ManufacturerFilter{Scope: "team-a"})
		assert.Equal(t, bson.M{
			"is_deleted": bson.M{"$ne": true},
			"$or": []bson.M{
				{"scope": "team-a"},
				{"scope": model.ScopePublic},
			},
		}, got)
	})

	t.Run("id lookup keeps its or group next to soft delete", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(Options[model.ManufacturerFilter]{
			SoftDelete:       true,
			SecondaryIDField: "legacy_id",
		})

		got := query.Merge(r.idFilter("abc"), r.baseFilter())
		assert.Equal(t, bson.M{
			"is_deleted": bson.M{"$ne": true},
			"$or": []bson.M{
				{"_id": "abc"},
				{"legacy_id": "abc"},
			},
		}, got)
	})
}

func TestUpdateByIDRejectsEmptySet(t *testing.T) {
	t.Parallel()

	t.Run("immutable-only fields leave nothing to set", func(t *testing.T) {
		t.Parallel()

		// Without timestamp stamping the $set would go out empty, which
		// the server rejects. The guard must fire before any query.
		r := newTestRepo(Options[model.ManufacturerFilter]{Name: "manufacturers"})

		_, err := r.UpdateByID(context.Background(), "abc", bson.M{"_id": "other", "created_at": "then"})
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})

	t.Run("no fields at all", func(t *testing.T) {
		t.Parallel()

		r := newTestRepo(Options[model.ManufacturerFilter]{Name: "manufacturers"})

		_, err := r.UpdateByID(context.Background(), "abc", bson.M{})
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})
}

func TestPageRequestNormalized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{
			name: "zero value gets defaults",
			in:   PageRequest{},
			want: PageRequest{Page: 1, PageSize: defaultPageSize, SortField: "_id"},
		},
		{
			name: "negative page clamps to first",
			in:   PageRequest{Page: -3, PageSize: 10, SortField: "model"},
			want: PageRequest{Page: 1, PageSize: 10, SortField: "model"},
		},
		{
			name: "explicit values pass through",
			in:   PageRequest{Page: 4, PageSize: 50, SortField: "name", SortDesc: true},
			want: PageRequest{Page: 4, PageSize: 50, SortField: "name", SortDesc: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.in.normalized())
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"empty collection", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"partial last page", 25, 10, 3},
		{"single item", 1, 20, 1},
		{"one full page", 10, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, totalPages(tt.total, tt.pageSize))
		})
	}
}
