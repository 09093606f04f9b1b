// Package generic implements the repository core shared by every
// catalog entity: CRUD over one mongo collection, optional soft
// delete, update stamping, id-strategy lookups and paginated queries,
// parameterized by the entity, document and filter types.
package generic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/query"
)

type Repository[E, D, F any] struct {
	coll   *mongo.Collection
	mapper Mapper[E, D]
	opts   Options[F]
}

func New[E, D, F any](coll *mongo.Collection, mapper Mapper[E, D], opts Options[F]) *Repository[E, D, F] {
	if opts.Name == "" {
		opts.Name = coll.Name()
	}
	return &Repository[E, D, F]{coll: coll, mapper: mapper, opts: opts}
}

// baseFilter is the predicate every read starts from.
func (r *Repository[E, D, F]) baseFilter() bson.M {
	if r.opts.SoftDelete {
		return query.NotDeleted()
	}
	return bson.M{}
}

// idFilter resolves an id through the configured strategy: the primary
// field alone, or primary-or-secondary when a secondary field is set.
func (r *Repository[E, D, F]) idFilter(id string) bson.M {
	if r.opts.SecondaryIDField == "" {
		return bson.M{"_id": id}
	}
	return bson.M{"$or": []bson.M{
		{"_id": id},
		{r.opts.SecondaryIDField: id},
	}}
}

// FilterQuery builds the compound read predicate for a typed filter:
// the soft-delete base merged with the entity's custom filter builder.
func (r *Repository[E, D, F]) FilterQuery(f F) bson.M {
	q := r.baseFilter()
	if r.opts.CustomFilter != nil {
		q = query.Merge(q, r.opts.CustomFilter(f))
	}
	return q
}

func (r *Repository[E, D, F]) Create(ctx context.Context, entity *E) (*E, error) {
	op := r.opts.Name + ".Create"

	if r.opts.Timestamps {
		if t, ok := any(entity).(Timestamped); ok {
			t.Touch(time.Now())
		}
	}

	doc := r.mapper.ToPersistence(entity)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.mapper.ToDomain(doc), nil
}

func (r *Repository[E, D, F]) FindByID(ctx context.Context, id string) (*E, error) {
	op := r.opts.Name + ".FindByID"

	var doc D
	err := r.coll.FindOne(ctx, query.Merge(r.idFilter(id), r.baseFilter())).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.mapper.ToDomain(&doc), nil
}

func (r *Repository[E, D, F]) FindAll(ctx context.Context) ([]*E, error) {
	return r.findMany(ctx, r.baseFilter(), nil)
}

// Find returns every entity matching the typed filter, unpaginated.
func (r *Repository[E, D, F]) Find(ctx context.Context, f F) ([]*E, error) {
	return r.findMany(ctx, r.FilterQuery(f), nil)
}

func (r *Repository[E, D, F]) findMany(ctx context.Context, q bson.M, fo *options.FindOptionsBuilder) ([]*E, error) {
	op := r.opts.Name + ".findMany"

	var cur *mongo.Cursor
	var err error
	if fo != nil {
		cur, err = r.coll.Find(ctx, q, fo)
	} else {
		cur, err = r.coll.Find(ctx, q)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*E, 0)
	for cur.Next(ctx) {
		var doc D
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, r.mapper.ToDomain(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *Repository[E, D, F]) Count(ctx context.Context, f F) (int64, error) {
	op := r.opts.Name + ".Count"

	n, err := r.coll.CountDocuments(ctx, r.FilterQuery(f))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *Repository[E, D, F]) Exists(ctx context.Context, id string) (bool, error) {
	op := r.opts.Name + ".Exists"

	n, err := r.coll.CountDocuments(ctx,
		query.Merge(r.idFilter(id), r.baseFilter()),
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n > 0, nil
}

// Update replaces the mutable fields of an existing entity and stamps
// the updated-at marker. Reports model.ErrNotFound when the id does
// not resolve.
func (r *Repository[E, D, F]) Update(ctx context.Context, entity *E) (*E, error) {
	op := r.opts.Name + ".Update"

	if r.opts.Timestamps {
		if t, ok := any(entity).(Timestamped); ok {
			t.Touch(time.Now())
		}
	}

	set, err := r.updateDoc(entity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.findOneAndSet(ctx, op, r.idFilter(r.mapper.ID(entity)), set)
}

// UpdateByID merges the given partial fields into the target document.
// Not-found reporting is unified with Update: model.ErrNotFound.
func (r *Repository[E, D, F]) UpdateByID(ctx context.Context, id string, fields bson.M) (*E, error) {
	op := r.opts.Name + ".UpdateByID"

	set := bson.M{}
	for k, v := range fields {
		if k == "_id" || k == "created_at" {
			continue
		}
		set[k] = v
	}
	if r.opts.Timestamps {
		set["updated_at"] = time.Now()
	}
	// An empty $set is a server error, not a no-op.
	if len(set) == 0 {
		return nil, fmt.Errorf("%s: no updatable fields: %w", op, model.ErrInvalidArgument)
	}

	return r.findOneAndSet(ctx, op, r.idFilter(id), set)
}

func (r *Repository[E, D, F]) findOneAndSet(ctx context.Context, op string, filter, set bson.M) (*E, error) {
	var doc D
	err := r.coll.FindOneAndUpdate(ctx,
		query.Merge(filter, r.baseFilter()),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.mapper.ToDomain(&doc), nil
}

// updateDoc produces the $set document for a full update: the mapper's
// ToUpdate if it has one, otherwise the persistence shape minus the
// immutable fields.
func (r *Repository[E, D, F]) updateDoc(entity *E) (bson.M, error) {
	if um, ok := r.mapper.(UpdateMapper[E]); ok {
		return um.ToUpdate(entity), nil
	}

	raw, err := bson.Marshal(r.mapper.ToPersistence(entity))
	if err != nil {
		return nil, err
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	delete(set, "_id")
	delete(set, "created_at")
	return set, nil
}

// Delete dispatches to the configured deletion behavior.
func (r *Repository[E, D, F]) Delete(ctx context.Context, id string) (bool, error) {
	if r.opts.SoftDelete {
		return r.SoftDelete(ctx, id)
	}
	return r.HardDelete(ctx, id)
}

// SoftDelete marks a live document deleted and stamps the deletion
// time. Deleting an already-deleted document matches nothing and
// returns false, so repeated deletes never corrupt state.
func (r *Repository[E, D, F]) SoftDelete(ctx context.Context, id string) (bool, error) {
	op := r.opts.Name + ".SoftDelete"

	res, err := r.coll.UpdateOne(ctx,
		query.Merge(r.idFilter(id), query.NotDeleted()),
		bson.M{"$set": bson.M{
			"is_deleted": true,
			"deleted_at": time.Now(),
		}},
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *Repository[E, D, F]) HardDelete(ctx context.Context, id string) (bool, error) {
	op := r.opts.Name + ".HardDelete"

	res, err := r.coll.DeleteOne(ctx, r.idFilter(id))
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return res.DeletedCount > 0, nil
}
