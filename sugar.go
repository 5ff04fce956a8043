// Package sugar is the home of lazily evaluated ranges and sequence walkers.
//
// The range engine lives in pkg/rangekit, the finite sequence walker in pkg/seqkit.
// Both report failures with the error values declared here,
// so callers can match them with errors.Is regardless of which component raised them.
package sugar

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrDomain is returned when a range would start from an unbounded value.
	ErrDomain errorkit.Error = "ErrDomain"
	// ErrTypeMismatch is returned when an argument's type is not usable for the requested operation.
	// For example range endpoints that are neither both integers nor both single characters.
	ErrTypeMismatch errorkit.Error = "ErrTypeMismatch"
	// ErrInvalidStep is returned for a zero step.
	ErrInvalidStep errorkit.Error = "ErrInvalidStep"
	// ErrDirection is returned when the sign of the step contradicts the order of the range endpoints.
	ErrDirection errorkit.Error = "ErrDirection"
	// ErrRange is returned when a sequence offset is out of bounds.
	ErrRange errorkit.Error = "ErrRange"
)
