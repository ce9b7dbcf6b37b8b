package creational

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/junioryono/creational/internal/registry"
)

// Constructor is a zero-argument vehicle constructor.
type Constructor func() (Vehicle, error)

// Descriptor describes a creatable vehicle type without holding an instance of it.
type Descriptor struct {
	// Name identifies the descriptor in errors and logs. Defaults to the key name.
	Name string

	// New constructs a new vehicle.
	New Constructor
}

// DescriptorFor adapts a plain constructor such as NewCar into a Descriptor.
func DescriptorFor[V Vehicle](name string, fn func() V) Descriptor {
	return Descriptor{
		Name: name,
		New: func() (Vehicle, error) {
			return fn(), nil
		},
	}
}

// Factory builds vehicles by TypeKey.
//
// BuildDirect is the closed baseline that knows every variant. BuildFromRegistry
// and BuildFromDescriptor consult registries populated by Register and
// RegisterDescriptor, so adding a variant never requires editing the Factory.
//
// All methods are safe for concurrent use.
type Factory struct {
	prototypes  *registry.Registry[TypeKey, Vehicle]
	descriptors *registry.Registry[TypeKey, Descriptor]

	logger  *slog.Logger
	metrics *factoryMetrics
}

// NewFactory creates a Factory with empty registries.
func NewFactory(opts ...Option) *Factory {
	o := &factoryOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(o)
		}
	}

	return &Factory{
		prototypes:  registry.New[TypeKey, Vehicle](),
		descriptors: registry.New[TypeKey, Descriptor](),
		logger:      o.logger,
		metrics:     newFactoryMetrics(o.registerer),
	}
}

// Register stores prototype under key. A previous prototype for the same key
// is silently replaced. Register panics if prototype is nil.
func (f *Factory) Register(key TypeKey, prototype Vehicle) {
	if prototype == nil {
		panic(fmt.Errorf("creational: register %s: %w", key, ErrNilPrototype))
	}

	if f.prototypes.Set(key, prototype) {
		f.logger.Debug("prototype replaced", "key", key)
	}
	f.metrics.recordRegistration(StrategyPrototype, key)
}

// RegisterDescriptor stores desc under key for descriptor based construction.
// A previous descriptor for the same key is silently replaced.
// RegisterDescriptor panics if desc has no constructor.
func (f *Factory) RegisterDescriptor(key TypeKey, desc Descriptor) {
	if desc.New == nil {
		panic(fmt.Errorf("creational: register descriptor %s: %w", key, ErrNilConstructor))
	}
	if desc.Name == "" {
		desc.Name = key.String()
	}

	if f.descriptors.Set(key, desc) {
		f.logger.Debug("descriptor replaced", "key", key, "descriptor", desc.Name)
	}
	f.metrics.recordRegistration(StrategyDescriptor, key)
}

// BuildDirect constructs the variant for key without consulting any registry.
// Keys outside the closed set yield an UnknownTypeKeyError.
func (f *Factory) BuildDirect(key TypeKey) (Vehicle, error) {
	var v Vehicle

	switch key {
	case KeyCar:
		v = NewCar()
	case KeyTruck:
		v = NewTruck()
	case KeyBike:
		v = NewBike()
	default:
		err := UnknownTypeKeyError{Value: key}
		f.logger.Warn("direct build with unknown key", "key", key)
		f.metrics.recordBuild(StrategyDirect, key, err)
		return nil, err
	}

	f.metrics.recordBuild(StrategyDirect, key, nil)
	return v, nil
}

// BuildFromRegistry returns a new vehicle created by the prototype registered
// under key. It fails with an UnregisteredTypeKeyError if there is none.
func (f *Factory) BuildFromRegistry(key TypeKey) (Vehicle, error) {
	prototype, ok := f.prototypes.Get(key)
	if !ok {
		err := UnregisteredTypeKeyError{Key: key, Strategy: StrategyPrototype}
		f.metrics.recordBuild(StrategyPrototype, key, err)
		return nil, err
	}

	v := prototype.CreateInstance()
	f.metrics.recordBuild(StrategyPrototype, key, nil)
	return v, nil
}

// BuildFromDescriptor invokes the constructor registered under key.
//
// It fails with an UnregisteredTypeKeyError if no descriptor is registered, and
// with an InstantiationError if the constructor returns an error, returns a nil
// vehicle, or panics.
func (f *Factory) BuildFromDescriptor(key TypeKey) (Vehicle, error) {
	desc, ok := f.descriptors.Get(key)
	if !ok {
		err := UnregisteredTypeKeyError{Key: key, Strategy: StrategyDescriptor}
		f.metrics.recordBuild(StrategyDescriptor, key, err)
		return nil, err
	}

	v, err := instantiate(desc)
	if err != nil {
		err = InstantiationError{Key: key, Descriptor: desc.Name, Cause: err}
		f.logger.Error("descriptor instantiation failed", "key", key, "descriptor", desc.Name, "error", err)
		f.metrics.recordBuild(StrategyDescriptor, key, err)
		return nil, err
	}

	f.metrics.recordBuild(StrategyDescriptor, key, nil)
	return v, nil
}

// instantiate calls the descriptor constructor, converting a panic into an error.
func instantiate(desc Descriptor) (v Vehicle, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = ConstructorPanicError{
				Descriptor: desc.Name,
				Panic:      r,
				Stack:      debug.Stack(),
			}
		}
	}()

	v, err = desc.New()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNilProduct
	}

	return v, nil
}

// Registered returns the keys that have a prototype, in ascending order.
func (f *Factory) Registered() []TypeKey {
	return f.prototypes.Keys()
}

// RegisteredDescriptors returns the keys that have a descriptor, in ascending order.
func (f *Factory) RegisteredDescriptors() []TypeKey {
	return f.descriptors.Keys()
}
