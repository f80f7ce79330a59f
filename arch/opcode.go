package arch

import (
	"slices"
	"strings"
)

// ArgKind is the type of an opcode argument.
type ArgKind int

//go:generate go tool stringer -linecomment -type=ArgKind
const (
	ARG_REGISTER       = ArgKind(0) // register
	ARG_NUMERAL        = ArgKind(1) // numeral
	ARG_DEREF_REGISTER = ArgKind(2) // [register]
	ARG_DEREF_NUMERAL  = ArgKind(3) // [numeral]
	ARG_ASCII          = ArgKind(4) // ascii
	ARG_DEREF_ASCII    = ArgKind(5) // [ascii]
)

// Argument is one positional opcode argument.
type Argument struct {
	Kind    ArgKind // Kind of argument.
	Display string  // Canonical rendering.
}

// MakeArgument builds an argument, rendering register names as given.
func MakeArgument(kind ArgKind, register string) (arg Argument) {
	arg.Kind = kind
	switch kind {
	case ARG_REGISTER:
		arg.Display = register
	case ARG_DEREF_REGISTER:
		arg.Display = "[" + register + "]"
	case ARG_NUMERAL:
		arg.Display = "#"
	case ARG_DEREF_NUMERAL:
		arg.Display = "[#]"
	case ARG_ASCII:
		arg.Display = "ASCII"
	case ARG_DEREF_ASCII:
		arg.Display = "[ASCII]"
	}
	return
}

// Cond is the flag condition of a control pattern.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_ALWAYS = Cond(0) // seq
	COND_IF     = Cond(1) // seq_if
	COND_ELSE   = Cond(2) // seq_else
)

// FlagSet is a sorted set of flag combination indexes.
type FlagSet []int

// AllFlags returns every combination of count flags.
func AllFlags(count int) (set FlagSet) {
	set = make(FlagSet, 0, 1<<count)
	for n := range 1 << count {
		set = append(set, n)
	}
	return
}

// Contains returns true if the combination is in the set.
func (set FlagSet) Contains(flags int) bool {
	_, found := slices.BinarySearch(set, flags)
	return found
}

// Union merges two sets.
func (set FlagSet) Union(other FlagSet) FlagSet {
	merged := append(slices.Clone(set), other...)
	slices.Sort(merged)
	return slices.Compact(merged)
}

// Complement returns the combinations of count flags not in the set.
func (set FlagSet) Complement(count int) (comp FlagSet) {
	comp = FlagSet{}
	for n := range 1 << count {
		if !set.Contains(n) {
			comp = append(comp, n)
		}
	}
	return
}

// MatchFlags returns the flag combinations matching a wildcard pattern.
// The pattern has one character per flag, most significant (first declared)
// first: 'x' matches either state, '0' and '1' match exactly.
func MatchFlags(pattern string, count int) (set FlagSet, err error) {
	if len(pattern) != count {
		err = ErrFlagPattern(pattern)
		return
	}

	for n := range len(pattern) {
		switch pattern[n] {
		case 'x', 'X', '0', '1':
		default:
			err = ErrFlagPattern(pattern)
			return
		}
	}

	set = FlagSet{}
	for flags := range 1 << count {
		match := true
		for n := range count {
			c := pattern[n]
			if c == 'x' || c == 'X' {
				continue
			}
			bit := (flags >> (count - 1 - n)) & 1
			if int(c-'0') != bit {
				match = false
				break
			}
		}
		if match {
			set = append(set, flags)
		}
	}

	return
}

// ControlPattern is the control line value asserted during one microcode
// cycle, for the listed flag combinations.
type ControlPattern struct {
	Bits  int     // Control line bits.
	Flags FlagSet // Flag combinations the pattern applies to.
	Cond  Cond    // Statement that produced the pattern.
}

// Opcode is one instruction encoding and its microcode.
type Opcode struct {
	Value     int              // Encoding value.
	Mnemonic  string           // Mnemonic.
	Arguments []Argument       // Positional arguments.
	Cycles    []ControlPattern // Microcode, one entry per cycle.
	File      string           // Defining file.
	LineNo    int              // Defining line.
}

// Signature returns the canonical string identifying the mnemonic and
// argument shape. Opcodes with equal signatures decode identically.
func (op *Opcode) Signature() string {
	parts := make([]string, 0, 1+len(op.Arguments))
	parts = append(parts, op.Mnemonic)

	for _, arg := range op.Arguments {
		switch arg.Kind {
		case ARG_REGISTER, ARG_DEREF_REGISTER:
			parts = append(parts, arg.Display)
		default:
			parts = append(parts, MakeArgument(arg.Kind, "").Display)
		}
	}

	return strings.Join(parts, "_")
}

// String renders the opcode as it would be written.
func (op *Opcode) String() string {
	var args []string
	for _, arg := range op.Arguments {
		args = append(args, arg.Display)
	}

	if len(args) == 0 {
		return op.Mnemonic
	}

	return op.Mnemonic + " " + strings.Join(args, ", ")
}

// lastCond returns the index of the most recent cycle with a condition.
func (op *Opcode) lastCond(cond Cond) (index int, ok bool) {
	for n := len(op.Cycles) - 1; n >= 0; n-- {
		if op.Cycles[n].Cond == cond {
			return n, true
		}
	}
	return
}
