package creational

var (
	// defaultFactory is the process-wide factory. It is never torn down.
	defaultFactory = NewFactory()
)

// Default returns the process-wide Factory used by the package-level functions.
func Default() *Factory {
	return defaultFactory
}

// Register stores prototype under key in the default factory.
func Register(key TypeKey, prototype Vehicle) {
	defaultFactory.Register(key, prototype)
}

// RegisterDescriptor stores desc under key in the default factory.
func RegisterDescriptor(key TypeKey, desc Descriptor) {
	defaultFactory.RegisterDescriptor(key, desc)
}

// BuildDirect constructs the variant for key using the default factory.
func BuildDirect(key TypeKey) (Vehicle, error) {
	return defaultFactory.BuildDirect(key)
}

// BuildFromRegistry builds a vehicle from the default factory's prototypes.
func BuildFromRegistry(key TypeKey) (Vehicle, error) {
	return defaultFactory.BuildFromRegistry(key)
}

// BuildFromDescriptor builds a vehicle from the default factory's descriptors.
func BuildFromDescriptor(key TypeKey) (Vehicle, error) {
	return defaultFactory.BuildFromDescriptor(key)
}
