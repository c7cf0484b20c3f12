package scene

import "errors"

var (
	// ErrUnsupportedChannels is returned for images that are neither RGB nor RGBA.
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	// ErrTextureSlotsFull is returned once every texture unit is taken.
	ErrTextureSlotsFull = errors.New("texture slots full")
	// ErrNilDrawable is returned when adding an instance with nothing to draw.
	ErrNilDrawable = errors.New("mesh instance has no drawable")
	// ErrMissingField is returned when a scene record lacks a required field.
	ErrMissingField = errors.New("missing field")
	// ErrIncompleteModel is returned when an imported model has no meshes.
	ErrIncompleteModel = errors.New("incomplete model")
)
