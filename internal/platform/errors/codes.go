// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// World dimension errors
	CodeWorldInvalidWidth  Code = "WORLD_INVALID_WIDTH"
	CodeWorldInvalidHeight Code = "WORLD_INVALID_HEIGHT"

	// Coordinate errors
	CodeWorldXOutOfRange Code = "WORLD_X_OUT_OF_RANGE"
	CodeWorldYOutOfRange Code = "WORLD_Y_OUT_OF_RANGE"

	// Cell errors
	CodeCellNameMissing Code = "CELL_NAME_MISSING"
	CodeCellNameBlank   Code = "CELL_NAME_BLANK"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeWorldInvalidWidth,
		CodeWorldInvalidHeight,
		CodeCellNameMissing,
		CodeCellNameBlank:
		return codes.InvalidArgument

	// OutOfRange - coordinates past the grid edge
	case CodeWorldXOutOfRange,
		CodeWorldYOutOfRange:
		return codes.OutOfRange

	default:
		return codes.Internal
	}
}
