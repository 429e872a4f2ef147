package domain

import "errors"

// Domain errors represent business logic failures.
// Callers classify wrapped errors with errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required collaborator was not configured.
	ErrNotImplemented = errors.New("not implemented")

	// Asset Errors.

	// ErrFormat indicates a malformed binary container or glTF JSON document.
	ErrFormat = errors.New("malformed glTF asset")

	// ErrIntegrity indicates an index cross-reference that does not resolve
	// within its document.
	ErrIntegrity = errors.New("dangling glTF reference")

	// ErrNoSkin indicates the avatar has no skin to bind animation channels against.
	ErrNoSkin = errors.New("avatar has no skin")

	// ErrTransport indicates the asset bytes could not be fetched or read.
	ErrTransport = errors.New("asset transport failed")

	// Catalog Errors.

	// ErrCatalogEmpty indicates no default animation is available for selection.
	ErrCatalogEmpty = errors.New("animation catalog is empty")
)

// ErrorKind returns a short, stable label for the asset error wrapped by err.
// Returns "internal" for errors outside the asset taxonomy and "" for nil.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.Is(err, ErrIntegrity):
		return "integrity"
	case errors.Is(err, ErrNoSkin):
		return "no_skin"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrCatalogEmpty):
		return "catalog_empty"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrNotImplemented):
		return "not_implemented"
	default:
		return "internal"
	}
}
