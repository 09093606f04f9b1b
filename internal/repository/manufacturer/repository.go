package manufacturer

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/generic"
	"github.com/helioward/solar-crm/internal/repository/query"
)

type Repository struct {
	*generic.Repository[model.Manufacturer, Entity, model.ManufacturerFilter]
}

func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{generic.New(coll, mapper{}, generic.Options[model.ManufacturerFilter]{
		Name:         "manufacturers",
		SoftDelete:   true,
		Timestamps:   true,
		CustomFilter: BuildFilter,
	})}
}

// BuildFilter translates the typed manufacturer filter into a bson
// query. Fragments are folded with query.Merge so the access-control
// $or and the search $or survive side by side.
func BuildFilter(f model.ManufacturerFilter) bson.M {
	q := bson.M{}
	if !f.AllScopes {
		q = query.Access(f.Scope)
	}

	if len(f.Types) > 0 {
		types := make([]int32, 0, len(f.Types))
		for _, t := range f.Types {
			types = append(types, int32(t))
		}
		q = query.Merge(q, bson.M{"equipment_type": bson.M{"$in": types}})
	}
	if len(f.Names) > 0 {
		norm := make([]string, 0, len(f.Names))
		for _, n := range f.Names {
			norm = append(norm, model.NormalizeName(n))
		}
		q = query.Merge(q, bson.M{"name_norm": bson.M{"$in": norm}})
	}

	return query.Merge(q, query.Search(f.Search, "name", "country"))
}
