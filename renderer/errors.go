package renderer

import "errors"

var (
	// ErrSceneNotDefined is returned by draw when no scene has been
	// loaded yet.
	ErrSceneNotDefined = errors.New("renderer: no scene defined")

	// ErrResizeZero is returned by Resize for a zero width or height.
	ErrResizeZero = errors.New("renderer: resize requires non-zero width and height")
)
