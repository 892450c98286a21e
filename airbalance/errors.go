package airbalance

import "fmt"

// Category of a calculation failure.
type ErrorKind string

const (
	AltitudeOutOfRange    ErrorKind = "AltitudeOutOfRange"
	TemperatureOutOfRange ErrorKind = "TemperatureOutOfRange"
	InvalidInput          ErrorKind = "InvalidInput"
	ConvergenceFailure    ErrorKind = "ConvergenceFailure"
)

/*
CalcError is the error type returned by every function in this package.

	Kind:  the error category
	Field: the input or quantity that caused the failure
*/
type CalcError struct {
	Kind  ErrorKind
	Field string
	Msg   string
}

func (e *CalcError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Field, e.Kind, e.Msg)
}

func new_calc_error(kind ErrorKind, field string, format string, a ...interface{}) *CalcError {
	return &CalcError{
		Kind:  kind,
		Field: field,
		Msg:   fmt.Sprintf(format, a...),
	}
}

// Kind reports the ErrorKind of err, or "" if err is not a *CalcError.
func Kind(err error) ErrorKind {
	if ce, ok := err.(*CalcError); ok {
		return ce.Kind
	}
	return ""
}
