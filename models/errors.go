package models

import "fmt"

// ArgumentError is returned when a caller passes an invalid argument to
// a model operation: an empty required string, a malformed URL, a
// negative numeric constraint or a missing relationship endpoint. The
// message names the constraint that was violated.
type ArgumentError string

func (e ArgumentError) Error() string {
	return string(e)
}

func argumentErrorf(format string, a ...interface{}) error {
	return ArgumentError(fmt.Sprintf(format, a...))
}
