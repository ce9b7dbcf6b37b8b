package creational

import (
	"errors"
	"fmt"
	"strings"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// These are wrapped by the typed errors below. Match them with errors.Is.

var (
	// Lookup errors.
	ErrUnknownTypeKey      = errors.New("unknown type key")
	ErrUnregisteredTypeKey = errors.New("type key not registered")

	// Construction errors.
	ErrInstantiation = errors.New("instantiation failed")
	ErrNilProduct    = errors.New("constructor returned a nil vehicle")

	// Registration errors.
	ErrNilPrototype   = errors.New("prototype cannot be nil")
	ErrNilConstructor = errors.New("descriptor constructor cannot be nil")
)

var (
	_ error = UnknownTypeKeyError{}
	_ error = UnregisteredTypeKeyError{}
	_ error = InstantiationError{}
	_ error = ConstructorPanicError{}
	_ error = RegistrationError{}
)

// ========================================
// Typed Errors for Rich Context
// ========================================

// UnknownTypeKeyError indicates a value outside the closed TypeKey set.
// Value is either a TypeKey or the raw text that failed to parse.
type UnknownTypeKeyError struct {
	Value any
}

func (e UnknownTypeKeyError) Error() string {
	if s, ok := e.Value.(string); ok {
		return fmt.Sprintf("unknown type key: %q", s)
	}
	return fmt.Sprintf("unknown type key: %v", e.Value)
}

func (e UnknownTypeKeyError) Is(target error) bool {
	return target == ErrUnknownTypeKey
}

// UnregisteredTypeKeyError indicates a registry lookup found no entry.
// Strategy names the registry that was consulted ("prototype" or "descriptor").
type UnregisteredTypeKeyError struct {
	Key      TypeKey
	Strategy string
}

func (e UnregisteredTypeKeyError) Error() string {
	return fmt.Sprintf("no %s registered for %s", e.Strategy, e.Key)
}

func (e UnregisteredTypeKeyError) Is(target error) bool {
	return target == ErrUnregisteredTypeKey
}

// InstantiationError wraps a failure of a descriptor constructor with the
// key and descriptor that produced it.
type InstantiationError struct {
	Key        TypeKey
	Descriptor string
	Cause      error
}

func (e InstantiationError) Error() string {
	return fmt.Sprintf("failed to instantiate %s from descriptor %q: %v", e.Key, e.Descriptor, e.Cause)
}

func (e InstantiationError) Unwrap() error {
	return e.Cause
}

func (e InstantiationError) Is(target error) bool {
	return target == ErrInstantiation
}

// ConstructorPanicError indicates a descriptor constructor panicked.
// It captures the panic value and stack trace for debugging.
type ConstructorPanicError struct {
	Descriptor string
	Panic      any
	Stack      []byte
}

func (e ConstructorPanicError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("constructor %q panicked: %v", e.Descriptor, e.Panic))

	if len(e.Stack) > 0 {
		b.WriteString("\n\nStack trace:\n")
		b.WriteString(string(e.Stack))
	}

	return b.String()
}

// RegistrationError wraps errors raised while applying a registration manifest.
type RegistrationError struct {
	Key       TypeKey
	Operation string // "register", "register-descriptor", "decode"
	Cause     error
}

func (e RegistrationError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Key, e.Cause)
}

func (e RegistrationError) Unwrap() error {
	return e.Cause
}

// IsUnregistered reports whether err is caused by a missing registry entry.
func IsUnregistered(err error) bool {
	return errors.Is(err, ErrUnregisteredTypeKey)
}

// IsInstantiationFailure reports whether err comes from a failed descriptor constructor.
func IsInstantiationFailure(err error) bool {
	return errors.Is(err, ErrInstantiation)
}
