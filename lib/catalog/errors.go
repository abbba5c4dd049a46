package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	ErrInvalidCatalog   = errors.New("catalog: invalid catalog")
	ErrUnknownComponent = errors.New("catalog: unknown component")
	ErrDuplicate        = errors.New("catalog: duplicate name")
	ErrCycle            = errors.New("catalog: reference cycle")
)

// IsNotFound checks if err is an unknown-component error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownComponent)
}
