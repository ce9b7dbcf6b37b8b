package creational

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TypeKey identifies a vehicle kind. The set of keys is closed: every
// creation strategy of a Factory is selected by one of the constants below.
type TypeKey int

const (
	// KeyCar selects the passenger car variant.
	KeyCar TypeKey = iota

	// KeyTruck selects the heavy goods variant.
	KeyTruck

	// KeyBike selects the two-wheeler variant.
	KeyBike
)

// TypeKeys returns every defined key in declaration order.
func TypeKeys() []TypeKey {
	return []TypeKey{KeyCar, KeyTruck, KeyBike}
}

// String returns the string representation of the TypeKey.
func (k TypeKey) String() string {
	switch k {
	case KeyCar:
		return "Car"
	case KeyTruck:
		return "Truck"
	case KeyBike:
		return "Bike"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// IsValid checks if the key belongs to the closed set.
func (k TypeKey) IsValid() bool {
	return k >= KeyCar && k <= KeyBike
}

// ParseTypeKey converts a case-insensitive kind name to a TypeKey.
func ParseTypeKey(s string) (TypeKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "car":
		return KeyCar, nil
	case "truck":
		return KeyTruck, nil
	case "bike":
		return KeyBike, nil
	default:
		return 0, UnknownTypeKeyError{Value: s}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k TypeKey) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, UnknownTypeKeyError{Value: k}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TypeKey) UnmarshalText(text []byte) error {
	parsed, err := ParseTypeKey(string(text))
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (k TypeKey) MarshalJSON() ([]byte, error) {
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *TypeKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return k.UnmarshalText([]byte(s))
}
