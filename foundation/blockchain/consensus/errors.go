package consensus

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by errors.Is for every InvalidParameterError.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError is returned when an input to one of the calculators
// cannot produce a defined result.
type InvalidParameterError struct {
	Param  string
	Value  any
	Reason string
}

// Error implements the error interface.
func (ipe *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s[%v]: %s", ipe.Param, ipe.Value, ipe.Reason)
}

// Is allows errors.Is to match against ErrInvalidParameter.
func (ipe *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// IsInvalidParameter checks if an error of type InvalidParameterError exists.
func IsInvalidParameter(err error) bool {
	var ipe *InvalidParameterError
	return errors.As(err, &ipe)
}

// GetInvalidParameter returns a copy of the InvalidParameterError pointer.
func GetInvalidParameter(err error) *InvalidParameterError {
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		return nil
	}
	return ipe
}

func invalid(param string, value any, reason string) error {
	return &InvalidParameterError{Param: param, Value: value, Reason: reason}
}
