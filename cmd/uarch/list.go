package main

import (
	"fmt"
	"io"

	"github.com/ezrec/uarch/arch"
)

// writeListing prints the geometry, symbols and microcode of a model.
func writeListing(w io.Writer, model *arch.Model) {
	fmt.Fprintf(w, "instruction_width %d\n", model.InstructionWidth)
	fmt.Fprintf(w, "address_width %d\n", model.AddressWidth)
	fmt.Fprintf(w, "flags %d\n", model.FlagCount)

	roms := []struct {
		name string
		rom  arch.RomShape
	}{
		{"decoder_rom", model.DecoderRom},
		{"program_rom", model.ProgramRom},
	}
	for _, entry := range roms {
		if !entry.rom.Defined {
			continue
		}
		fmt.Fprintf(w, "%v %d inputs %d outputs, %d bits, write %v\n",
			entry.name, entry.rom.InputBits, entry.rom.OutputBits, entry.rom.Size(), entry.rom.Write)
	}

	fmt.Fprintln(w)
	for sym := range model.Symbols.All() {
		switch sym.Kind {
		case arch.SYMBOL_REGISTER:
			fmt.Fprintf(w, "%-10v %-16v %d (%d bits)\n", sym.Kind, sym.Name, sym.Address, sym.Width)
		case arch.SYMBOL_CONTROL_LINE:
			fmt.Fprintf(w, "%-10v %-16v $%08X\n", sym.Kind, sym.Name, sym.Address)
		default:
			fmt.Fprintf(w, "%-10v %-16v %d\n", sym.Kind, sym.Name, sym.Address)
		}
	}

	for value, op := range model.Opcodes() {
		fmt.Fprintf(w, "\n$%02X %v\t; %v\n", value, op, op.Signature())
		for cycle, cp := range op.Cycles {
			fmt.Fprintf(w, "  %d %-8v $%08X %v\n", cycle, cp.Cond, cp.Bits, cp.Flags)
		}
	}

	for value, op := range model.Aliases() {
		target := "unresolved"
		if resolved, ok := model.Resolve(value); ok {
			target = fmt.Sprintf("$%02X", resolved.Value)
		}
		fmt.Fprintf(w, "\n$%02X %v\t; alias of %v\n", value, op, target)
	}
}
