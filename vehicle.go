package creational

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Vehicle is the product family built by a Factory.
//
// Each variant knows its own TypeKey and acts as a prototype: CreateInstance
// returns a freshly constructed vehicle of the same kind.
type Vehicle interface {
	// ID returns the identity assigned when the vehicle was constructed.
	ID() string

	// Kind returns the TypeKey of the variant.
	Kind() TypeKey

	// Parts returns the parts arranged for the vehicle.
	Parts() []string

	// Construct runs the variant specific build step, reporting progress to w.
	// The step's parts are fitted once; later calls only report.
	Construct(w io.Writer) error

	// CreateInstance returns a new, independently constructed vehicle of the same kind.
	CreateInstance() Vehicle
}

// chassis holds the state shared by every vehicle variant.
type chassis struct {
	id   string
	kind TypeKey

	mu    sync.RWMutex
	parts []string

	built sync.Once
}

func (c *chassis) assemble(kind TypeKey, parts ...string) {
	c.id = uuid.NewString()
	c.kind = kind
	c.arrangeParts(parts)
}

// arrangeParts is the one-time processing done for every variant.
func (c *chassis) arrangeParts(parts []string) {
	c.parts = append([]string{"frame", "wheels"}, parts...)
}

func (c *chassis) ID() string {
	return c.id
}

func (c *chassis) Kind() TypeKey {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kind
}

// SetKind relabels the vehicle.
func (c *chassis) SetKind(kind TypeKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.kind = kind
}

func (c *chassis) Parts() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := make([]string, len(c.parts))
	copy(parts, c.parts)
	return parts
}

// fit adds the variant's construct-step parts. Only the first call has an effect.
func (c *chassis) fit(parts ...string) {
	c.built.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.parts = append(c.parts, parts...)
	})
}

// Car is the passenger variant.
type Car struct {
	chassis
}

// NewCar returns a car with its parts arranged.
func NewCar() *Car {
	v := &Car{}
	v.assemble(KeyCar, "engine", "seats")
	return v
}

func (v *Car) Construct(w io.Writer) error {
	v.fit("infotainment")
	_, err := fmt.Fprintln(w, "Building Car")
	return err
}

func (v *Car) CreateInstance() Vehicle {
	return NewCar()
}

// Truck is the heavy goods variant.
type Truck struct {
	chassis
}

// NewTruck returns a truck with its parts arranged.
func NewTruck() *Truck {
	v := &Truck{}
	v.assemble(KeyTruck, "engine", "cargo-bed")
	return v
}

func (v *Truck) Construct(w io.Writer) error {
	v.fit("tow-hitch")
	_, err := fmt.Fprintln(w, "Building Truck")
	return err
}

func (v *Truck) CreateInstance() Vehicle {
	return NewTruck()
}

// Bike is the two-wheeler variant.
type Bike struct {
	chassis
}

// NewBike returns a bike with its parts arranged.
func NewBike() *Bike {
	v := &Bike{}
	v.assemble(KeyBike, "pedals", "chain")
	return v
}

func (v *Bike) Construct(w io.Writer) error {
	v.fit("bell")
	_, err := fmt.Fprintln(w, "Building Bike")
	return err
}

func (v *Bike) CreateInstance() Vehicle {
	return NewBike()
}
