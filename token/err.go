package token

import (
	"github.com/ezrec/uarch/translate"
)

var f = translate.From

// ErrNumber is returned when a token is not a valid numeric literal.
type ErrNumber string

func (err ErrNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrConfigKey is returned when a syntax key is longer than one character.
type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("syntax key %v must be a single character", string(err))
}
