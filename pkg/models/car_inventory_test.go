package models

import (
	"testing"

	"github.com/golangdaddy/chasedrive/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarInventory_AllCarsHaveValidPhysics(t *testing.T) {
	cars := CarInventory.GetAllCars()
	require.NotEmpty(t, cars)
	assert.Same(t, cars[0], CarInventory.Default())

	for _, c := range cars {
		assert.NoError(t, c.Physics(vehicle.DefaultPhysics()).Validate(), c.Name())
	}
}
