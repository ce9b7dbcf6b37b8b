package creational_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/creational"
)

func TestLoadManifest(t *testing.T) {
	t.Run("valid manifest", func(t *testing.T) {
		m, err := creational.LoadManifest(strings.NewReader(`
vehicles:
  - kind: car
  - kind: Bike
    strategies: [descriptor]
`))
		require.NoError(t, err)
		require.Len(t, m.Vehicles, 2)
		assert.Equal(t, creational.KeyCar, m.Vehicles[0].Kind)
		assert.Empty(t, m.Vehicles[0].Strategies)
		assert.Equal(t, creational.KeyBike, m.Vehicles[1].Kind)
		assert.Equal(t, []string{"descriptor"}, m.Vehicles[1].Strategies)
	})

	t.Run("empty document", func(t *testing.T) {
		m, err := creational.LoadManifest(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, m.Vehicles)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := creational.LoadManifest(strings.NewReader("vehicles:\n  - kind: plane\n"))
		assert.ErrorIs(t, err, creational.ErrUnknownTypeKey)
	})

	t.Run("missing kind", func(t *testing.T) {
		_, err := creational.LoadManifest(strings.NewReader("vehicles:\n  - strategies: [prototype]\n"))
		assert.ErrorIs(t, err, creational.ErrUnknownTypeKey)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := creational.LoadManifest(strings.NewReader("vehicles:\n  - kind: car\n    strategies: [reflection]\n"))
		require.Error(t, err)

		var regErr creational.RegistrationError
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, creational.KeyCar, regErr.Key)
		assert.Contains(t, err.Error(), "reflection")
	})

	t.Run("unknown top-level field", func(t *testing.T) {
		_, err := creational.LoadManifest(strings.NewReader("colors: [red]\n"))
		assert.Error(t, err)
	})

	t.Run("unknown entry field", func(t *testing.T) {
		m, err := creational.LoadManifest(strings.NewReader("vehicles:\n  - kind: bike\n    strategy: [descriptor]\n"))
		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "field strategy not found")
	})
}

func TestManifest_Apply(t *testing.T) {
	m := &creational.Manifest{
		Vehicles: []creational.ManifestEntry{
			{Kind: creational.KeyCar},
			{Kind: creational.KeyTruck, Strategies: []string{creational.StrategyPrototype}},
			{Kind: creational.KeyBike, Strategies: []string{creational.StrategyDescriptor}},
		},
	}

	f := creational.NewFactory()
	require.NoError(t, m.Apply(f))

	assert.Equal(t, []creational.TypeKey{creational.KeyCar, creational.KeyTruck}, f.Registered())
	assert.Equal(t, []creational.TypeKey{creational.KeyCar, creational.KeyBike}, f.RegisteredDescriptors())

	_, err := f.BuildFromRegistry(creational.KeyBike)
	assert.True(t, creational.IsUnregistered(err))

	v, err := f.BuildFromDescriptor(creational.KeyBike)
	require.NoError(t, err)
	assert.Equal(t, creational.KeyBike, v.Kind())
}

func TestManifest_ApplyRejectsInvalid(t *testing.T) {
	m := &creational.Manifest{
		Vehicles: []creational.ManifestEntry{{Kind: creational.TypeKey(12)}},
	}

	f := creational.NewFactory()
	assert.ErrorIs(t, m.Apply(f), creational.ErrUnknownTypeKey)
	assert.Empty(t, f.Registered())
}

func TestLoadManifestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vehicles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vehicles:\n  - kind: truck\n"), 0o600))

	m, err := creational.LoadManifestFile(path)
	require.NoError(t, err)
	require.Len(t, m.Vehicles, 1)
	assert.Equal(t, creational.KeyTruck, m.Vehicles[0].Kind)

	_, err = creational.LoadManifestFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
