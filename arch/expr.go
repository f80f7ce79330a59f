package arch

import (
	"fmt"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/uarch/token"
)

type shiftOp int

const (
	shiftNone  = shiftOp(0)
	shiftLeft  = shiftOp(1)
	shiftRight = shiftOp(2)
)

// evaluator scans an expression left to right, one token at a time.
//
// Numbers and symbols replace the accumulator, unless a '|' is pending in
// which case they are ORed in (XORed for '_' prefixed symbols). A '<<' or
// '>>' is applied once at the end, between the accumulator and the first
// operand seen after it. '=' is ignored.
type evaluator struct {
	cfg     token.Config
	symbols *SymbolTable

	value    int
	hasValue bool
	or       bool

	shift     shiftOp
	second    int
	hasSecond bool
}

func newEvaluator(cfg token.Config, symbols *SymbolTable) *evaluator {
	return &evaluator{cfg: cfg, symbols: symbols}
}

// resolve looks up a symbol. A '_' prefixed reference falls back to the
// name without the underscore.
func (ev *evaluator) resolve(name string) (value int, err error) {
	sym, ok := ev.symbols.Lookup(name)
	if !ok && strings.HasPrefix(name, "_") {
		sym, ok = ev.symbols.Lookup(name[1:])
	}
	if !ok {
		err = ErrUnresolvedSymbol(name)
		return
	}

	value = sym.Address
	return
}

// feed consumes one token.
func (ev *evaluator) feed(tok string) (err error) {
	switch tok {
	case "=":
		return
	case "|":
		ev.or = true
		return
	case "<<":
		ev.shift = shiftLeft
		return
	case ">>":
		ev.shift = shiftRight
		return
	}

	var value int
	symbol := !ev.cfg.IsNumber(tok)
	if symbol {
		value, err = ev.resolve(tok)
	} else {
		value, err = ev.cfg.ParseNumber(tok)
	}
	if err != nil {
		return
	}

	switch {
	case ev.shift != shiftNone && ev.hasValue && !ev.hasSecond:
		ev.second = value
		ev.hasSecond = true
	case ev.or:
		if !ev.hasValue {
			ev.value = 0
		}
		if symbol && strings.HasPrefix(tok, "_") {
			ev.value ^= value
		} else {
			ev.value |= value
		}
		ev.hasValue = true
		ev.or = false
	default:
		ev.value = value
		ev.hasValue = true
	}

	return
}

// feedLine consumes every remaining token of a line.
func (ev *evaluator) feedLine(ln *token.Line) (err error) {
	for tok, ok := ln.NextWsOrComma(); ok; tok, ok = ln.NextWsOrComma() {
		err = ev.feed(tok)
		if err != nil {
			return
		}
	}
	return
}

// result returns the value of the expression; ok is false if no operand was
// seen at all.
func (ev *evaluator) result() (value int, ok bool, err error) {
	if ev.or {
		err = ErrMissingOperand("operand after '|'")
		return
	}

	switch ev.shift {
	case shiftLeft, shiftRight:
		if !ev.hasValue || !ev.hasSecond {
			err = ErrMissingOperand("shift operand")
			return
		}
		if ev.shift == shiftLeft {
			value = ev.value << uint(ev.second)
		} else {
			value = ev.value >> uint(ev.second)
		}
		ok = true
		return
	}

	return ev.value, ev.hasValue, nil
}

var parenExprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)
var identifierRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// parenEval does compile-time $(...) evaluations, with every symbol that is
// a valid identifier predeclared to its address.
func parenEval(symbols *SymbolTable, expr string, lineno int) (value int, err error) {
	thread := starlark.Thread{Name: "uarch"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	for sym := range symbols.All() {
		if !identifierRegexp.MatchString(sym.Name) {
			continue
		}
		pred[sym.Name] = starlark.MakeInt(sym.Address)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 {
		err = ErrExpression(expr)
		return
	}

	value = int(st_int64)
	return
}

// substitute replaces every $(...) in text with its decimal value.
func substitute(symbols *SymbolTable, text string, lineno int) (out string, err error) {
	out = parenExprRegexp.ReplaceAllStringFunc(text, func(str string) string {
		if err != nil {
			return str
		}
		value, _err := parenEval(symbols, str[2:len(str)-1], lineno)
		if _err != nil {
			err = _err
			return str
		}
		return fmt.Sprintf("%d", value)
	})

	return
}
