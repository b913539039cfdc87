// Package maaserrors contains generic errors returned by code handling
// scheduling requests and job state.
//
// If multiple errors occur in some function (e.g., if several fields of a
// request are invalid), that function should return an error of type
// multierror.Error from package github.com/hashicorp/go-multierror that
// encapsulates those individual errors.
package maaserrors

import (
	"fmt"
)

// ErrInvalidJobId indicates that a value could not be used as a job id,
// e.g., because a string could not be parsed into a uuid.
// Message is optional and is omitted from the error message if not provided.
type ErrInvalidJobId struct {
	// The value that could not be used as a job id.
	Value string
	// An optional message to include with the error message.
	Message string
}

func (err *ErrInvalidJobId) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("%q is not a valid job id", err.Value)
	}
	return fmt.Sprintf("%q is not a valid job id; %s", err.Value, err.Message)
}

// ErrInvalidArgument is a generic error to be returned on invalid argument.
// Message is optional and is omitted from the error message if not provided.
type ErrInvalidArgument struct {
	Name    string      // Name of the field referred to, e.g., "cpus"
	Value   interface{} // The invalid value that was provided
	Message string      // An optional message explaining why the value is invalid
}

func (err *ErrInvalidArgument) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %q is invalid for field %q", err.Value, err.Name)
	}
	return fmt.Sprintf("value %q is invalid for field %q; %s", err.Value, err.Name, err.Message)
}
