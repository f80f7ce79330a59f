package arch

import (
	"errors"

	"github.com/ezrec/uarch/token"
	"github.com/ezrec/uarch/translate"
)

var f = translate.From

var (
	ErrNoActiveOpcode = errors.New(f("sequence without opcode"))
	ErrFlagsFrozen    = errors.New(f("flag declared after first control pattern"))
)

// ErrInvalidNumber is returned for a malformed numeric literal.
type ErrInvalidNumber = token.ErrNumber

// ErrMissingOperand names a required operand that was absent.
type ErrMissingOperand string

func (err ErrMissingOperand) Error() string {
	return f("missing %v", string(err))
}

// ErrUnresolvedSymbol names a symbol reference absent from the symbol table.
type ErrUnresolvedSymbol string

func (err ErrUnresolvedSymbol) Error() string {
	return f("symbol %v undefined", string(err))
}

// ErrUnknownDirective names an unregistered directive.
type ErrUnknownDirective string

func (err ErrUnknownDirective) Error() string {
	return f("unknown directive %v", string(err))
}

// ErrMalformedInclude holds the unparseable text of an include directive.
type ErrMalformedInclude string

func (err ErrMalformedInclude) Error() string {
	return f("malformed include at '%v'", string(err))
}

// ErrSymbolDuplicate names a symbol defined twice.
type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("symbol %v duplicated", string(err))
}

// ErrOpcodeDuplicate is the encoding value of an opcode defined twice.
type ErrOpcodeDuplicate int

func (err ErrOpcodeDuplicate) Error() string {
	return f("opcode 0x%02x duplicated", int(err))
}

// ErrFlagLimit is the flag count a declaration would exceed.
type ErrFlagLimit int

func (err ErrFlagLimit) Error() string {
	return f("more than %d flags", int(err))
}

// ErrFlagPattern is an invalid seq_if wildcard pattern.
type ErrFlagPattern string

func (err ErrFlagPattern) Error() string {
	return f("'%v' is not a valid flag pattern", string(err))
}

// ErrExpression is a failed $(...) evaluation.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrIO is a read failure other than end of file.
type ErrIO struct {
	Path string
	Err  error
}

func (err *ErrIO) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrIO) Unwrap() error {
	return err.Err
}

// ErrStatement locates a failed statement.
type ErrStatement struct {
	File   string
	LineNo int
	Label  string
	Err    error
}

func (err *ErrStatement) Error() string {
	return f("%v line %d %v: %v", err.File, err.LineNo, err.Label, err.Err)
}

func (err *ErrStatement) Unwrap() error {
	return err.Err
}
