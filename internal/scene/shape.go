package scene

import "strings"

// Shape is one of the canonical primitive solids.
type Shape int

const (
	Box Shape = iota
	Cone
	Cylinder
	Plane
	Prism
	Pyramid3
	Pyramid4
	Sphere
	TaperedCylinder
	Torus
)

// Shapes lists every canonical shape in the order the editor offers them.
var Shapes = []Shape{Box, Cone, Cylinder, Plane, Prism, Pyramid3, Pyramid4, Sphere, TaperedCylinder, Torus}

var shapeTags = [...]string{
	Box:             "box",
	Cone:            "cone",
	Cylinder:        "cylinder",
	Plane:           "plane",
	Prism:           "prism",
	Pyramid3:        "pyramid3",
	Pyramid4:        "pyramid4",
	Sphere:          "sphere",
	TaperedCylinder: "tapered cylinder",
	Torus:           "torus",
}

var shapeLabels = [...]string{
	Box:             "Box",
	Cone:            "Cone",
	Cylinder:        "Cylinder",
	Plane:           "Plane",
	Prism:           "Prism",
	Pyramid3:        "Pyramid 3",
	Pyramid4:        "Pyramid 4",
	Sphere:          "Sphere",
	TaperedCylinder: "Tapered Cylinder",
	Torus:           "Torus",
}

// String returns the tag used for instances of the shape ("tapered cylinder", ...).
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeTags) {
		return "unknown"
	}
	return shapeTags[s]
}

// Label returns the human-readable name used on UI buttons.
func (s Shape) Label() string {
	if s < 0 || int(s) >= len(shapeLabels) {
		return "Unknown"
	}
	return shapeLabels[s]
}

// ParseShape returns the shape whose tag equals name exactly.
func ParseShape(name string) (Shape, bool) {
	for _, s := range Shapes {
		if shapeTags[s] == name {
			return s, true
		}
	}
	return 0, false
}

// tapered cylinder must be tested before cylinder, which is a substring of it
var shapeMatchOrder = []Shape{Box, Cone, TaperedCylinder, Cylinder, Plane, Prism, Pyramid3, Pyramid4, Sphere, Torus}

// ShapeForTag classifies a free-form instance tag by the first shape tag it contains.
func ShapeForTag(tag string) (Shape, bool) {
	for _, s := range shapeMatchOrder {
		if strings.Contains(tag, shapeTags[s]) {
			return s, true
		}
	}
	return 0, false
}
