package creational_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/creational"
)

func TestTypeKey(t *testing.T) {
	t.Run("constants", func(t *testing.T) {
		assert.Equal(t, creational.TypeKey(0), creational.KeyCar)
		assert.Equal(t, creational.TypeKey(1), creational.KeyTruck)
		assert.Equal(t, creational.TypeKey(2), creational.KeyBike)
		assert.Equal(t, []creational.TypeKey{creational.KeyCar, creational.KeyTruck, creational.KeyBike}, creational.TypeKeys())
	})

	t.Run("String", func(t *testing.T) {
		tests := []struct {
			key      creational.TypeKey
			expected string
		}{
			{creational.KeyCar, "Car"},
			{creational.KeyTruck, "Truck"},
			{creational.KeyBike, "Bike"},
			{creational.TypeKey(999), "Unknown(999)"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.key.String())
		}
	})

	t.Run("IsValid", func(t *testing.T) {
		assert.True(t, creational.KeyCar.IsValid())
		assert.True(t, creational.KeyBike.IsValid())
		assert.False(t, creational.TypeKey(-1).IsValid())
		assert.False(t, creational.TypeKey(3).IsValid())
	})

	t.Run("ParseTypeKey", func(t *testing.T) {
		for _, in := range []string{"car", "Car", " CAR "} {
			key, err := creational.ParseTypeKey(in)
			require.NoError(t, err)
			assert.Equal(t, creational.KeyCar, key)
		}

		_, err := creational.ParseTypeKey("plane")
		assert.ErrorIs(t, err, creational.ErrUnknownTypeKey)
		assert.EqualError(t, err, `unknown type key: "plane"`)
	})

	t.Run("JSON round trip", func(t *testing.T) {
		data, err := json.Marshal(creational.KeyTruck)
		require.NoError(t, err)
		assert.Equal(t, `"Truck"`, string(data))

		var key creational.TypeKey
		require.NoError(t, json.Unmarshal([]byte(`"bike"`), &key))
		assert.Equal(t, creational.KeyBike, key)
	})

	t.Run("invalid keys do not marshal", func(t *testing.T) {
		_, err := json.Marshal(creational.TypeKey(7))
		assert.ErrorIs(t, err, creational.ErrUnknownTypeKey)

		var key creational.TypeKey
		assert.Error(t, json.Unmarshal([]byte(`"boat"`), &key))
		assert.Error(t, json.Unmarshal([]byte(`3`), &key))
	})
}
