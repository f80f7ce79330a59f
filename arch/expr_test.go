package arch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uarch/token"
)

func exprSymbols() *SymbolTable {
	st := &SymbolTable{}
	st.Define(Symbol{Name: "A", Kind: SYMBOL_CONTROL_LINE, Address: 0b0001})
	st.Define(Symbol{Name: "B", Kind: SYMBOL_CONTROL_LINE, Address: 0b0100})
	st.Define(Symbol{Name: "_C", Kind: SYMBOL_CONSTANT, Address: 0b1000})
	return st
}

func evalString(text string) (value int, ok bool, err error) {
	ev := newEvaluator(token.DefaultConfig(), exprSymbols())
	ln := token.NewLine(text)
	err = ev.feedLine(&ln)
	if err != nil {
		return
	}
	return ev.result()
}

func TestEvaluator(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text  string
		value int
	}{
		{"A", 0b0001},
		{"= A", 0b0001},
		{"A | B", 0b0101},
		{"A | _B", 0b0101},
		{"_A | _A", 0},
		{"| B", 0b0100},
		{"_C", 0b1000},
		{"A | _C", 0b1001},
		{"A << 2", 0b0100},
		{"B >> 2", 0b0001},
		{"%1100 >> A", 0b0110},
		{"A B", 0b0100},
		{"$1F", 31},
		{"0x10 | 1", 17},
		{"12", 12},
	}

	for _, entry := range table {
		value, ok, err := evalString(entry.text)
		assert.NoError(err, entry.text)
		assert.True(ok, entry.text)
		assert.Equal(entry.value, value, entry.text)
	}

	_, ok, err := evalString("")
	assert.NoError(err)
	assert.False(ok)
}

func TestEvaluator_Errors(t *testing.T) {
	assert := assert.New(t)

	_, _, err := evalString("A <<")
	assert.Equal(ErrMissingOperand("shift operand"), err)

	_, _, err = evalString("<< 2")
	assert.Equal(ErrMissingOperand("shift operand"), err)

	_, _, err = evalString("A |")
	assert.Equal(ErrMissingOperand("operand after '|'"), err)

	_, _, err = evalString("A | Z")
	assert.Equal(ErrUnresolvedSymbol("Z"), err)

	_, _, err = evalString("_Z")
	assert.Equal(ErrUnresolvedSymbol("_Z"), err)

	_, _, err = evalString("$XY")
	var number ErrInvalidNumber
	assert.True(errors.As(err, &number))
	assert.Equal(ErrInvalidNumber("$XY"), number)
}

func TestSubstitute(t *testing.T) {
	assert := assert.New(t)

	st := exprSymbols()

	out, err := substitute(st, "X $(A + B * 2) Y", 0)
	assert.NoError(err)
	assert.Equal("X 9 Y", out)

	out, err = substitute(st, "$(LINENO) $(_C >> 3)", 7)
	assert.NoError(err)
	assert.Equal("7 1", out)

	out, err = substitute(st, "no expressions $FF", 0)
	assert.NoError(err)
	assert.Equal("no expressions $FF", out)

	_, err = substitute(st, "$(A - 5)", 0)
	assert.Equal(ErrExpression("A - 5"), err)

	_, err = substitute(st, "$(undefined + 1)", 0)
	var expr ErrExpression
	assert.True(errors.As(err, &expr))
	assert.Equal(ErrExpression("undefined + 1"), expr)

	_, err = substitute(st, `$("text")`, 0)
	assert.Equal(ErrExpression(`"text"`), err)
}
