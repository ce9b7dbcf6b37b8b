package creational

// RegisterVehicles registers a prototype and a descriptor for every built-in
// variant on f. Applications call it once during startup, before any lookup.
func RegisterVehicles(f *Factory) {
	f.Register(KeyCar, NewCar())
	f.RegisterDescriptor(KeyCar, DescriptorFor("Car", NewCar))

	f.Register(KeyTruck, NewTruck())
	f.RegisterDescriptor(KeyTruck, DescriptorFor("Truck", NewTruck))

	f.Register(KeyBike, NewBike())
	f.RegisterDescriptor(KeyBike, DescriptorFor("Bike", NewBike))
}

// Bootstrap registers every built-in variant on the default factory.
func Bootstrap() {
	RegisterVehicles(defaultFactory)
}

// prototypeFor returns a fresh prototype for a key in the closed set.
func prototypeFor(key TypeKey) (Vehicle, error) {
	switch key {
	case KeyCar:
		return NewCar(), nil
	case KeyTruck:
		return NewTruck(), nil
	case KeyBike:
		return NewBike(), nil
	default:
		return nil, UnknownTypeKeyError{Value: key}
	}
}

// descriptorFor returns the built-in descriptor for a key in the closed set.
func descriptorFor(key TypeKey) (Descriptor, error) {
	switch key {
	case KeyCar:
		return DescriptorFor("Car", NewCar), nil
	case KeyTruck:
		return DescriptorFor("Truck", NewTruck), nil
	case KeyBike:
		return DescriptorFor("Bike", NewBike), nil
	default:
		return Descriptor{}, UnknownTypeKeyError{Value: key}
	}
}
