package dom

import "errors"

// ErrInvalidElementType is returned when rendering an element whose type
// is neither a host tag nor a Renderer.
var ErrInvalidElementType = errors.New("dom: invalid element type")

// IsInvalidElementType checks if err is an invalid element type error.
func IsInvalidElementType(err error) bool {
	return errors.Is(err, ErrInvalidElementType)
}
