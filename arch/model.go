package arch

import (
	"iter"

	"github.com/ezrec/uarch/internal"
)

// RomShape is the declared geometry of a ROM.
type RomShape struct {
	Defined    bool // Set once declared.
	Write      bool // ROM image should be written.
	InputBits  int  // Address lines.
	OutputBits int  // Data lines.
}

// Size returns the ROM size in bits, OutputBits × 2^InputBits.
func (rom RomShape) Size() int {
	return rom.OutputBits << rom.InputBits
}

// MaxFlags is the most flags a model may declare; every control pattern
// spans up to 2^MaxFlags flag combinations.
const MaxFlags = 16

// Options control the semantics of ambiguous definitions.
type Options struct {
	Duplicates DuplicatePolicy // Symbol and opcode redefinition handling.

	// ElseComplement makes seq_else apply to the flag combinations not
	// matched by the opcode's preceding seq_if, instead of to all of them.
	ElseComplement bool
}

// MicroAddress locates one microcode word.
type MicroAddress struct {
	Opcode int // Encoding value.
	Cycle  int // Cycle index.
	Flags  int // Flag combination.
}

// Model is the architecture built from a definition.
type Model struct {
	InstructionWidth int      // Instruction width in bits.
	AddressWidth     int      // Address width in bits.
	FlagCount        int      // Number of declared flags.
	DecoderRom       RomShape // Decoder ROM geometry.
	ProgramRom       RomShape // Program ROM geometry.

	Address        int // Address cursor.
	MaxAddress     int // Highest address cursor value.
	MaxControlLine int // Highest control line value, -1 if none.
	MaxOpcode      int // Highest opcode value, -1 if none.
	MaxCycles      int // Most cycles in one opcode.

	Symbols SymbolTable // Symbol table.

	opcodes  map[int]*Opcode
	aliases  map[int]*Opcode
	patterns int
}

// NewModel creates an empty model.
func NewModel(policy DuplicatePolicy) (model *Model) {
	model = &Model{
		MaxControlLine: -1,
		MaxOpcode:      -1,
		Symbols:        SymbolTable{Policy: policy},
		opcodes:        make(map[int]*Opcode),
		aliases:        make(map[int]*Opcode),
	}

	return
}

// SetAddress moves the address cursor.
func (model *Model) SetAddress(address int) {
	model.Address = address
	if address > model.MaxAddress {
		model.MaxAddress = address
	}
}

// AddRegister defines a register. Registers are numbered in declaration
// order.
func (model *Model) AddRegister(name string, width int, file string, lineno int) (sym Symbol, err error) {
	sym = Symbol{
		Name:    name,
		Kind:    SYMBOL_REGISTER,
		Address: model.Symbols.Defined(SYMBOL_REGISTER),
		Width:   width,
		File:    file,
		LineNo:  lineno,
	}
	err = model.Symbols.Define(sym)
	return
}

// AddFlag defines the next flag. Flags may not be added once any control
// pattern exists, as patterns are expanded over the flags known when they
// are created.
func (model *Model) AddFlag(name string, file string, lineno int) (sym Symbol, err error) {
	if model.patterns > 0 {
		err = ErrFlagsFrozen
		return
	}

	if model.FlagCount >= MaxFlags {
		err = ErrFlagLimit(MaxFlags)
		return
	}

	sym = Symbol{
		Name:    name,
		Kind:    SYMBOL_FLAG,
		Address: model.FlagCount,
		File:    file,
		LineNo:  lineno,
	}
	err = model.Symbols.Define(sym)
	if err != nil {
		return
	}

	model.FlagCount++
	return
}

// AddControlLine defines a control line.
func (model *Model) AddControlLine(name string, value int, file string, lineno int) (err error) {
	err = model.Symbols.Define(Symbol{
		Name:    name,
		Kind:    SYMBOL_CONTROL_LINE,
		Address: value,
		File:    file,
		LineNo:  lineno,
	})
	if err != nil {
		return
	}

	if value > model.MaxControlLine {
		model.MaxControlLine = value
	}
	return
}

// AddConstant defines a constant.
func (model *Model) AddConstant(name string, value int, file string, lineno int) (err error) {
	return model.Symbols.Define(Symbol{
		Name:    name,
		Kind:    SYMBOL_CONSTANT,
		Address: value,
		File:    file,
		LineNo:  lineno,
	})
}

// AddOpcode registers an opcode by its encoding value.
func (model *Model) AddOpcode(op *Opcode) (err error) {
	_, ok := model.opcodes[op.Value]
	if ok && model.Symbols.Policy == DUPLICATE_REJECT {
		err = ErrOpcodeDuplicate(op.Value)
		return
	}

	model.opcodes[op.Value] = op
	if op.Value > model.MaxOpcode {
		model.MaxOpcode = op.Value
	}
	model.noteCycles(op)

	return
}

// AddAlias registers an alternate encoding value for an instruction.
func (model *Model) AddAlias(op *Opcode) (err error) {
	_, ok := model.aliases[op.Value]
	if ok && model.Symbols.Policy == DUPLICATE_REJECT {
		err = ErrOpcodeDuplicate(op.Value)
		return
	}

	model.aliases[op.Value] = op
	if op.Value > model.MaxOpcode {
		model.MaxOpcode = op.Value
	}

	return
}

// AddCycle appends a control pattern to an opcode.
func (model *Model) AddCycle(op *Opcode, cp ControlPattern) {
	op.Cycles = append(op.Cycles, cp)
	model.patterns++
	model.noteCycles(op)
}

func (model *Model) noteCycles(op *Opcode) {
	if len(op.Cycles) > model.MaxCycles {
		model.MaxCycles = len(op.Cycles)
	}
}

// AllFlags returns every flag combination of the current flag count.
func (model *Model) AllFlags() FlagSet {
	return AllFlags(model.FlagCount)
}

// Opcode returns the opcode with an encoding value.
func (model *Model) Opcode(value int) (op *Opcode, ok bool) {
	op, ok = model.opcodes[value]
	return
}

// Alias returns the alias with an encoding value.
func (model *Model) Alias(value int) (op *Opcode, ok bool) {
	op, ok = model.aliases[value]
	return
}

// Resolve returns the opcode whose microcode an encoding value executes:
// the opcode itself, or for an alias the opcode sharing its signature.
func (model *Model) Resolve(value int) (op *Opcode, ok bool) {
	op, ok = model.opcodes[value]
	if ok {
		return
	}

	alias, ok := model.aliases[value]
	if !ok {
		return
	}

	target, ok := model.ValueBySignature(alias.Signature())
	if !ok {
		return
	}

	return model.Opcode(target)
}

// IsMnemonic returns true if any opcode or alias uses the mnemonic.
func (model *Model) IsMnemonic(mnemonic string) bool {
	for _, op := range model.AllOpcodes() {
		if op.Mnemonic == mnemonic {
			return true
		}
	}
	return false
}

// ValueBySignature returns the lowest opcode value with a signature.
func (model *Model) ValueBySignature(signature string) (value int, ok bool) {
	return bySignature(model.Opcodes(), signature)
}

// AliasValueBySignature returns the lowest alias value with a signature.
func (model *Model) AliasValueBySignature(signature string) (value int, ok bool) {
	return bySignature(model.Aliases(), signature)
}

func bySignature(seq iter.Seq2[int, *Opcode], signature string) (value int, ok bool) {
	for value, op := range seq {
		if op.Signature() == signature {
			return value, true
		}
	}
	return
}

// Opcodes iterates the opcodes in value order.
func (model *Model) Opcodes() iter.Seq2[int, *Opcode] {
	return internal.IterSorted(model.opcodes)
}

// Aliases iterates the aliases in value order.
func (model *Model) Aliases() iter.Seq2[int, *Opcode] {
	return internal.IterSorted(model.aliases)
}

// AllOpcodes iterates the opcodes, then the aliases.
func (model *Model) AllOpcodes() iter.Seq2[int, *Opcode] {
	return internal.IterSeq2Concat(model.Opcodes(), model.Aliases())
}

// Microcode iterates every microcode word: for each opcode and alias, each
// cycle, and each flag combination the cycle applies to, the control bits.
// Aliases yield the microcode of the opcode sharing their signature.
func (model *Model) Microcode() iter.Seq2[MicroAddress, int] {
	return func(yield func(MicroAddress, int) bool) {
		for value := range model.AllOpcodes() {
			op, ok := model.Resolve(value)
			if !ok {
				continue
			}
			for cycle, cp := range op.Cycles {
				for _, flags := range cp.Flags {
					addr := MicroAddress{Opcode: value, Cycle: cycle, Flags: flags}
					if !yield(addr, cp.Bits) {
						return
					}
				}
			}
		}
	}
}
