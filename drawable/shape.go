package drawable

// Shape criteria.
const (
	Circle    = "circle"
	Rectangle = "rectangle"
	Square    = "square"
	Triangle  = "triangle"
)

// Shape is a drawable outline.
type Shape struct {
	product
}

func newShape(name string) *Shape {
	return &Shape{product{name: name, family: FamilyShape, verb: "Drawing"}}
}

// ShapeFactory builds the Shape family.
type ShapeFactory struct{}

func (ShapeFactory) Family() string { return FamilyShape }

// Shape returns the shape matching criteria, or nil.
func (ShapeFactory) Shape(criteria string) *Shape {
	if criteria == Circle {
		return newShape(Circle)
	} else if criteria == Rectangle {
		return newShape(Rectangle)
	} else if criteria == Square {
		return newShape(Square)
	} else if criteria == Triangle {
		return newShape(Triangle)
	}

	return nil
}

func (f ShapeFactory) Drawable(criteria string) (Drawable, error) {
	if s := f.Shape(criteria); s != nil {
		return s, nil
	}
	return nil, UnknownCriteriaError{Family: FamilyShape, Criteria: criteria}
}
