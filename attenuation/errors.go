package attenuation

import "errors"

var (
	// ErrMaterialNotFound reports that a data source has no table for the
	// requested material.
	ErrMaterialNotFound = errors.New("attenuation: material not found in data source")

	// ErrEnergyRange reports a query outside the tabulated energy span.
	ErrEnergyRange = errors.New("attenuation: energy outside tabulated range")

	// ErrBadTable reports a table file that does not follow the expected
	// format.
	ErrBadTable = errors.New("attenuation: malformed table")
)
