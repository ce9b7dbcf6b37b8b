package drawable

// Color criteria.
const (
	Red    = "red"
	Blue   = "blue"
	Green  = "green"
	Yellow = "yellow"
)

// Color is a drawable fill.
type Color struct {
	product
}

func newColor(name string) *Color {
	return &Color{product{name: name, family: FamilyColor, verb: "Filling with"}}
}

// ColorFactory builds the Color family.
type ColorFactory struct{}

func (ColorFactory) Family() string { return FamilyColor }

// Color returns the color matching criteria, or nil.
func (ColorFactory) Color(criteria string) *Color {
	if criteria == Red {
		return newColor(Red)
	} else if criteria == Blue {
		return newColor(Blue)
	} else if criteria == Green {
		return newColor(Green)
	} else if criteria == Yellow {
		return newColor(Yellow)
	}

	return nil
}

func (f ColorFactory) Drawable(criteria string) (Drawable, error) {
	if c := f.Color(criteria); c != nil {
		return c, nil
	}
	return nil, UnknownCriteriaError{Family: FamilyColor, Criteria: criteria}
}
