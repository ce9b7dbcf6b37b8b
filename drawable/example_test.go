package drawable_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/junioryono/creational/drawable"
)

func ExampleGetFactory() {
	shapes, _ := drawable.GetFactory(drawable.FamilyShape)
	circle, _ := shapes.Drawable(drawable.Circle)
	_ = circle.Draw(os.Stdout)

	colors, _ := drawable.GetFactory(drawable.FamilyColor)
	red, _ := colors.Drawable(drawable.Red)
	_ = red.Draw(os.Stdout)

	_, err := drawable.GetFactory("Texture")
	fmt.Println(errors.Is(err, drawable.ErrUnknownFamily))
	// Output:
	// Drawing circle
	// Filling with red
	// true
}
