package manufacturer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/manufacturer"
)

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty filter is public access only", func(t *testing.T) {
		t.Parallel()

		got := manufacturer.BuildFilter(model.ManufacturerFilter{})
		assert.Equal(t, bson.M{"scope": model.ScopePublic}, got)
	})

	t.Run("types map to an in clause", func(t *testing.T) {
		t.Parallel()

		got := manufacturer.BuildFilter(model.ManufacturerFilter{
			Types: []model.EquipmentType{model.EquipmentTypeModule, model.EquipmentTypeBoth},
		})
		assert.Equal(t, bson.M{
			"scope":          model.ScopePublic,
			"equipment_type": bson.M{"$in": []int32{1, 3}},
		}, got)
	})

	t.Run("names are normalized before matching", func(t *testing.T) {
		t.Parallel()

		got := manufacturer.BuildFilter(model.ManufacturerFilter{
			Names: []string{"  Acme Solar ", "VOLTIX"},
		})
		assert.Equal(t, bson.M{"$in": []string{"acme solar", "voltix"}}, got["name_norm"])
	})

	t.Run("all scopes drops the visibility predicate", func(t *testing.T) {
		t.Parallel()

		got := manufacturer.BuildFilter(model.ManufacturerFilter{
			AllScopes: true,
			Names:     []string{"Acme Solar"},
		})
		assert.Equal(t, bson.M{"name_norm": bson.M{"$in": []string{"acme solar"}}}, got)
	})

	t.Run("scoped search keeps both or groups", func(t *testing.T) {
		t.Parallel()

		got := manufacturer.BuildFilter(model.ManufacturerFilter{
			Scope:  "team-a",
			Search: "sun",
		})

		// Access and search each produce an $or; neither may win alone.
		require.Contains(t, got, "$and")
		and, ok := got["$and"].([]any)
		require.True(t, ok)
		assert.Len(t, and, 2)
		assert.NotContains(t, got, "$or")
	})
}
