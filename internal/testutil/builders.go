package testutil

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/junioryono/creational"
)

// FactoryBuilder provides a fluent interface for building test factories
type FactoryBuilder struct {
	t    *testing.T
	opts []creational.Option
	regs []func(*creational.Factory)
}

// NewFactoryBuilder creates a new FactoryBuilder
func NewFactoryBuilder(t *testing.T) *FactoryBuilder {
	return &FactoryBuilder{t: t}
}

// WithVehicles registers every built-in prototype and descriptor
func (b *FactoryBuilder) WithVehicles() *FactoryBuilder {
	b.regs = append(b.regs, creational.RegisterVehicles)
	return b
}

// WithPrototype registers a prototype under key
func (b *FactoryBuilder) WithPrototype(key creational.TypeKey, prototype creational.Vehicle) *FactoryBuilder {
	b.regs = append(b.regs, func(f *creational.Factory) {
		f.Register(key, prototype)
	})
	return b
}

// WithDescriptor registers a descriptor under key
func (b *FactoryBuilder) WithDescriptor(key creational.TypeKey, desc creational.Descriptor) *FactoryBuilder {
	b.regs = append(b.regs, func(f *creational.Factory) {
		f.RegisterDescriptor(key, desc)
	})
	return b
}

// WithMetrics reports the factory counters to reg
func (b *FactoryBuilder) WithMetrics(reg prometheus.Registerer) *FactoryBuilder {
	b.opts = append(b.opts, creational.WithMetrics(reg))
	return b
}

// Build returns the factory with every registration applied in order
func (b *FactoryBuilder) Build() *creational.Factory {
	b.t.Helper()

	f := creational.NewFactory(b.opts...)
	for _, reg := range b.regs {
		reg(f)
	}
	return f
}
