package common

import "errors"

var (
	// ErrorInvalidValue reports arguments with an impossible shape or value.
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorNoRoot reports that the bandwidth equation has no bracketed root,
	// which happens for degenerate or near constant data.
	ErrorNoRoot = errors.New("no bracketed root")

	// ErrorInvalidMesh reports mesh points outside a distribution's support.
	ErrorInvalidMesh = errors.New("invalid mesh")
)
