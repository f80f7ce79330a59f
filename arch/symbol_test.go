package arch

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	st := &SymbolTable{}
	assert.Equal(0, st.Len())
	assert.Equal(SYMBOL_NONE, st.Kind("A"))

	_, ok := st.Lookup("A")
	assert.False(ok)

	_, err := st.Address("A")
	assert.Equal(ErrUnresolvedSymbol("A"), err)

	assert.NoError(st.Define(Symbol{Name: "B", Kind: SYMBOL_REGISTER, Address: 0, Width: 8}))
	assert.NoError(st.Define(Symbol{Name: "A", Kind: SYMBOL_REGISTER, Address: 1, Width: 16}))
	assert.NoError(st.Define(Symbol{Name: "LOAD", Kind: SYMBOL_CONTROL_LINE, Address: 0x40}))

	sym, ok := st.Lookup("A")
	assert.True(ok)
	assert.Equal(16, sym.Width)
	assert.Equal(SYMBOL_REGISTER, st.Kind("A"))

	addr, err := st.Address("LOAD")
	assert.NoError(err)
	assert.Equal(0x40, addr)

	assert.Equal([]int{0, 1}, st.Addresses(SYMBOL_REGISTER))
	assert.Equal(2, st.Defined(SYMBOL_REGISTER))
	assert.Equal(0, st.Defined(SYMBOL_FLAG))
	assert.Equal(3, st.Len())

	var names []string
	for sym := range st.All() {
		names = append(names, sym.Name)
	}
	assert.Equal([]string{"A", "B", "LOAD"}, names)
	assert.True(slices.IsSorted(names))
}

func TestSymbolTable_Duplicate(t *testing.T) {
	assert := assert.New(t)

	st := &SymbolTable{}
	assert.NoError(st.Define(Symbol{Name: "A", Kind: SYMBOL_CONSTANT, Address: 1}))

	err := st.Define(Symbol{Name: "A", Kind: SYMBOL_CONSTANT, Address: 2})
	var dup ErrSymbolDuplicate
	assert.True(errors.As(err, &dup))
	assert.Equal(ErrSymbolDuplicate("A"), dup)

	addr, err := st.Address("A")
	assert.NoError(err)
	assert.Equal(1, addr)
}

func TestSymbolTable_Shadow(t *testing.T) {
	assert := assert.New(t)

	st := &SymbolTable{Policy: DUPLICATE_SHADOW}
	assert.NoError(st.Define(Symbol{Name: "A", Kind: SYMBOL_CONSTANT, Address: 1}))
	assert.NoError(st.Define(Symbol{Name: "A", Kind: SYMBOL_FLAG, Address: 2}))

	assert.Equal(SYMBOL_FLAG, st.Kind("A"))
	addr, err := st.Address("A")
	assert.NoError(err)
	assert.Equal(2, addr)
	assert.Equal(1, st.Len())
	assert.Equal(1, st.Defined(SYMBOL_CONSTANT))
}

func TestSymbolKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("register", SYMBOL_REGISTER.String())
	assert.Equal("control", SYMBOL_CONTROL_LINE.String())
	assert.Equal("shadow", DUPLICATE_SHADOW.String())
}
