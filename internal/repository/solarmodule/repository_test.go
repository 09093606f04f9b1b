package solarmodule_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/solarmodule"
)

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	t.Run("manufacturer and power window combine flat", func(t *testing.T) {
		t.Parallel()

		got := solarmodule.BuildFilter(model.SolarModuleFilter{
			ManufacturerID: "m-1",
			MinPowerW:      lo.ToPtr(300.0),
			MaxPowerW:      lo.ToPtr(500.0),
		})
		assert.Equal(t, bson.M{
			"scope":           model.ScopePublic,
			"manufacturer_id": "m-1",
			"nominal_power_w": bson.M{"$gte": 300.0, "$lte": 500.0},
		}, got)
	})

	t.Run("team scope carries its or group", func(t *testing.T) {
		t.Parallel()

		got := solarmodule.BuildFilter(model.SolarModuleFilter{
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

	t.Run("all scopes drops the visibility predicate", func(t *testing.T) {
		t.Parallel()

		got := solarmodule.BuildFilter(model.SolarModuleFilter{
			AllScopes:      true,
			ManufacturerID: "m-1",
		})
		assert.Equal(t, bson.M{"manufacturer_id": "m-1"}, got)
	})

	t.Run("search matches the model field", func(t *testing.T) {
		t.Parallel()

		got := solarmodule.BuildFilter(model.SolarModuleFilter{Search: "HS-450"})
		assert.Equal(t, bson.M{"$regex": "HS-450", "$options": "i"}, got["model"])
	})
}
