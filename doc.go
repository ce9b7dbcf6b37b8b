// Package creational provides a registry-backed vehicle factory.
//
// # Overview
//
// A Factory builds vehicles selected by a TypeKey using one of three
// strategies:
//   - BuildDirect: a closed switch over the known variants. Adding a variant
//     means editing the switch.
//   - BuildFromRegistry: copies a prototype registered with Register.
//   - BuildFromDescriptor: calls a zero-argument constructor registered with
//     RegisterDescriptor.
//
// The two registry strategies let each variant be added without touching the
// Factory itself.
//
// # Basic Usage
//
// Register the variants once during startup, then build:
//
//	factory := creational.NewFactory(creational.WithLogger(logger))
//	creational.RegisterVehicles(factory)
//
//	car, err := factory.BuildFromRegistry(creational.KeyCar)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	car.Construct(os.Stdout)
//
// A manifest can select which variants are registered:
//
//	m, err := creational.LoadManifestFile("vehicles.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := m.Apply(factory); err != nil {
//	    log.Fatal(err)
//	}
//
// # Default Factory
//
// Default returns a process-wide factory. The package-level Register,
// RegisterDescriptor and Build functions operate on it, and Bootstrap
// registers the built-in variants on it.
//
// # Registration Semantics
//
// Registering a key that already has an entry replaces the entry. There is
// no error and no accumulation: the last writer wins.
//
// # Error Handling
//
// Build methods return typed errors that match sentinel values with errors.Is:
//   - UnknownTypeKeyError (ErrUnknownTypeKey): key outside the closed set
//   - UnregisteredTypeKeyError (ErrUnregisteredTypeKey): no registry entry
//   - InstantiationError (ErrInstantiation): a descriptor constructor failed,
//     returned nil, or panicked (see ConstructorPanicError)
//
// # Thread Safety
//
// Registration and lookup may run concurrently from any number of goroutines.
//
// See the drawable subpackage for the two-level abstract factory and the
// singleton subpackage for the single-instance variants.
package creational
