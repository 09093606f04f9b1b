package inverter_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/inverter"
)

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	t.Run("ac power window bounds the query", func(t *testing.T) {
		t.Parallel()

		got := inverter.BuildFilter(model.InverterFilter{
			MinACPowerW: lo.ToPtr(5000.0),
		})
		assert.Equal(t, bson.M{
			"scope":      model.ScopePublic,
			"ac_power_w": bson.M{"$gte": 5000.0},
		}, got)
	})

	t.Run("all scopes drops the visibility predicate", func(t *testing.T) {
		t.Parallel()

		got := inverter.BuildFilter(model.InverterFilter{
			AllScopes:      true,
			ManufacturerID: "m-1",
		})
		assert.Equal(t, bson.M{"manufacturer_id": "m-1"}, got)
	})

	t.Run("manufacturer id narrows a team view", func(t *testing.T) {
		t.Parallel()

		got := inverter.BuildFilter(model.InverterFilter{
			Scope:          "team-a",
			ManufacturerID: "m-1",
		})
		assert.Equal(t, bson.M{
			"manufacturer_id": "m-1",
			"$or": []bson.M{
				{"scope": "team-a"},
				{"scope": model.ScopePublic},
			},
		}, got)
	})
}
