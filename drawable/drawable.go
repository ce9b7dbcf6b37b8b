// Package drawable implements a two-level abstract factory: a family name
// selects a Factory, and a criteria string selects a product within it.
package drawable

import (
	"errors"
	"fmt"
	"io"
)

// Family names understood by GetFactory.
const (
	FamilyShape = "Shape"
	FamilyColor = "Color"
)

var (
	// ErrUnknownFamily is matched by UnknownFamilyError.
	ErrUnknownFamily = errors.New("unknown drawable family")

	// ErrUnknownCriteria is matched by UnknownCriteriaError.
	ErrUnknownCriteria = errors.New("unknown drawable criteria")
)

// Drawable is the product built by every family factory.
type Drawable interface {
	// Name returns the criteria the drawable was built from, e.g. "circle".
	Name() string

	// Family returns the family name of the factory that built it.
	Family() string

	// Draw renders the drawable to w.
	Draw(w io.Writer) error
}

// Factory builds the products of one family.
type Factory interface {
	// Family returns the family name, e.g. "Shape".
	Family() string

	// Drawable returns the product matching criteria, or a nil Drawable and an
	// UnknownCriteriaError when nothing matches.
	Drawable(criteria string) (Drawable, error)
}

// GetFactory returns the factory for family. Unknown names return a nil
// Factory and an UnknownFamilyError.
func GetFactory(family string) (Factory, error) {
	switch family {
	case FamilyColor:
		return ColorFactory{}, nil
	case FamilyShape:
		return ShapeFactory{}, nil
	default:
		return nil, UnknownFamilyError{Family: family}
	}
}

// Families returns the known family names.
func Families() []string {
	return []string{FamilyShape, FamilyColor}
}

// New resolves family and criteria in one call.
func New(family, criteria string) (Drawable, error) {
	f, err := GetFactory(family)
	if err != nil {
		return nil, err
	}
	return f.Drawable(criteria)
}

// UnknownFamilyError indicates GetFactory received an unrecognized family name.
type UnknownFamilyError struct {
	Family string
}

func (e UnknownFamilyError) Error() string {
	return fmt.Sprintf("unknown drawable family %q (known: %s, %s)", e.Family, FamilyShape, FamilyColor)
}

func (e UnknownFamilyError) Is(target error) bool {
	return target == ErrUnknownFamily
}

// UnknownCriteriaError indicates a family factory has no product for the criteria.
type UnknownCriteriaError struct {
	Family   string
	Criteria string
}

func (e UnknownCriteriaError) Error() string {
	return fmt.Sprintf("%s factory has no drawable %q", e.Family, e.Criteria)
}

func (e UnknownCriteriaError) Is(target error) bool {
	return target == ErrUnknownCriteria
}

// product is the shared implementation of the concrete drawables.
type product struct {
	name   string
	family string
	verb   string
}

func (p product) Name() string   { return p.name }
func (p product) Family() string { return p.family }

func (p product) Draw(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s\n", p.verb, p.name)
	return err
}
