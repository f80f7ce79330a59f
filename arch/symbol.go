package arch

import (
	"iter"
	"maps"
	"slices"
)

// SymbolKind is the type of a symbol.
type SymbolKind int

//go:generate go tool stringer -linecomment -type=SymbolKind
const (
	SYMBOL_NONE         = SymbolKind(0) // none
	SYMBOL_CONSTANT     = SymbolKind(1) // constant
	SYMBOL_VARIABLE     = SymbolKind(2) // variable
	SYMBOL_LABEL        = SymbolKind(3) // label
	SYMBOL_REGISTER     = SymbolKind(4) // register
	SYMBOL_FLAG         = SymbolKind(5) // flag
	SYMBOL_CONTROL_LINE = SymbolKind(6) // control
)

// DuplicatePolicy selects how a redefinition is handled.
type DuplicatePolicy int

//go:generate go tool stringer -linecomment -type=DuplicatePolicy
const (
	DUPLICATE_REJECT = DuplicatePolicy(0) // reject
	DUPLICATE_SHADOW = DuplicatePolicy(1) // shadow
)

// Symbol is a named, addressed value.
type Symbol struct {
	Name    string     // Unique name.
	Kind    SymbolKind // Kind of symbol.
	Address int        // Value or slot.
	Width   int        // Bit width, registers only.
	File    string     // Defining file.
	LineNo  int        // Defining line.
}

// SymbolTable maps names to symbols.
type SymbolTable struct {
	Policy DuplicatePolicy // Redefinition handling.

	symbols   map[string]Symbol
	addresses map[SymbolKind][]int
}

// Define inserts a symbol. Under DUPLICATE_REJECT an existing name is an
// error; under DUPLICATE_SHADOW the new symbol replaces it.
func (st *SymbolTable) Define(sym Symbol) (err error) {
	if st.symbols == nil {
		st.symbols = make(map[string]Symbol, 64)
		st.addresses = make(map[SymbolKind][]int)
	}

	if _, ok := st.symbols[sym.Name]; ok && st.Policy == DUPLICATE_REJECT {
		err = ErrSymbolDuplicate(sym.Name)
		return
	}

	st.symbols[sym.Name] = sym
	st.addresses[sym.Kind] = append(st.addresses[sym.Kind], sym.Address)

	return
}

// Lookup finds a symbol by name.
func (st *SymbolTable) Lookup(name string) (sym Symbol, ok bool) {
	sym, ok = st.symbols[name]
	return
}

// Kind returns the kind of a symbol, or SYMBOL_NONE.
func (st *SymbolTable) Kind(name string) SymbolKind {
	return st.symbols[name].Kind
}

// Address returns the address of a symbol.
func (st *SymbolTable) Address(name string) (address int, err error) {
	sym, ok := st.symbols[name]
	if !ok {
		err = ErrUnresolvedSymbol(name)
		return
	}

	address = sym.Address
	return
}

// Addresses returns the addresses of every symbol of a kind, in definition
// order.
func (st *SymbolTable) Addresses(kind SymbolKind) []int {
	return slices.Clone(st.addresses[kind])
}

// Defined returns how many symbols of a kind have been defined, counting
// shadowed definitions.
func (st *SymbolTable) Defined(kind SymbolKind) int {
	return len(st.addresses[kind])
}

// Len returns the number of reachable symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// All iterates the symbols in name order.
func (st *SymbolTable) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, name := range slices.Sorted(maps.Keys(st.symbols)) {
			if !yield(st.symbols[name]) {
				return
			}
		}
	}
}
