package arch

import (
	"log"
	"path"
	"strconv"
	"strings"
)

// number extracts a required numeric operand.
func (p *pass) number(st *Statement, what string) (value int, err error) {
	tok, ok := st.Args.NextWsOrComma()
	if !ok {
		err = ErrMissingOperand(what)
		return
	}

	return p.cfg.ParseNumber(tok)
}

// names extracts a non-empty list of names.
func (p *pass) names(st *Statement, what string) (names []string, err error) {
	names = st.Args.Tokens()
	if len(names) == 0 {
		err = ErrMissingOperand(what)
	}
	return
}

// bitWidth handles instruction_width and address_width.
func (p *pass) bitWidth(st *Statement) (err error) {
	width, err := p.number(st, "width")
	if err != nil {
		return
	}

	switch st.Kind {
	case STATEMENT_INSTRUCTION_WIDTH:
		p.model.InstructionWidth = width
	case STATEMENT_ADDRESS_WIDTH:
		p.model.AddressWidth = width
	}

	if p.Verbose {
		log.Printf("  %v set to %d", st.Kind, width)
	}
	return
}

// rom handles decoder_rom and program_rom.
func (p *pass) rom(st *Statement) (err error) {
	write, err := p.number(st, "write flag")
	if err != nil {
		return
	}
	if write != 0 && write != 1 {
		err = ErrInvalidNumber(strconv.Itoa(write))
		return
	}

	inputs, err := p.number(st, "input bits")
	if err != nil {
		return
	}

	outputs, err := p.number(st, "output bits")
	if err != nil {
		return
	}

	shape := RomShape{
		Defined:    true,
		Write:      write == 1,
		InputBits:  inputs,
		OutputBits: outputs,
	}

	switch st.Kind {
	case STATEMENT_DECODER_ROM:
		p.model.DecoderRom = shape
	case STATEMENT_PROGRAM_ROM:
		p.model.ProgramRom = shape
	}

	if p.Verbose {
		log.Printf("  %v with %d inputs and %d outputs, %d bits (write %v)", st.Kind, inputs, outputs, shape.Size(), shape.Write)
	}
	return
}

// register handles register.
func (p *pass) register(st *Statement) (err error) {
	width, err := p.number(st, "register width")
	if err != nil {
		return
	}

	names, err := p.names(st, "register name")
	if err != nil {
		return
	}

	for _, name := range names {
		var sym Symbol
		sym, err = p.model.AddRegister(name, width, st.File, st.LineNo)
		if err != nil {
			return
		}
		if p.Verbose {
			log.Printf("  adding %d-bit register %v at %d", width, name, sym.Address)
		}
	}

	return
}

// flagDevice handles flag and device. Devices are accepted and otherwise
// ignored.
func (p *pass) flagDevice(st *Statement) (err error) {
	names, err := p.names(st, st.Kind.String()+" name")
	if err != nil {
		return
	}

	for _, name := range names {
		if st.Kind == STATEMENT_DEVICE {
			if p.Verbose {
				log.Printf("  ignoring device %v", name)
			}
			continue
		}

		var sym Symbol
		sym, err = p.model.AddFlag(name, st.File, st.LineNo)
		if err != nil {
			return
		}
		if p.Verbose {
			log.Printf("  adding flag %v at %d", name, sym.Address)
		}
	}

	return
}

// control handles control.
func (p *pass) control(st *Statement) (err error) {
	name, ok := st.Args.Next()
	if !ok {
		err = ErrMissingOperand("control line name")
		return
	}

	ev := newEvaluator(p.cfg, &p.model.Symbols)
	err = ev.feedLine(&st.Args)
	if err != nil {
		return
	}

	value, ok, err := ev.result()
	if err != nil {
		return
	}
	if !ok {
		err = ErrMissingOperand("control line value")
		return
	}

	err = p.model.AddControlLine(name, value, st.File, st.LineNo)
	if err != nil {
		return
	}

	if p.Verbose {
		log.Printf("  control line %v = $%08X = %%%b", name, value, value)
	}
	return
}

// argument classifies an opcode argument token.
func (p *pass) argument(tok string) (arg Argument, ok bool) {
	inner, indirect := p.cfg.StripIndirect(tok)

	var kind ArgKind
	switch {
	case strings.HasPrefix(inner, "#"):
		kind = ARG_NUMERAL
	case inner == "ASCII":
		kind = ARG_ASCII
	case p.model.Symbols.Kind(inner) == SYMBOL_REGISTER:
		kind = ARG_REGISTER
	default:
		return
	}

	if indirect {
		switch kind {
		case ARG_NUMERAL:
			kind = ARG_DEREF_NUMERAL
		case ARG_ASCII:
			kind = ARG_DEREF_ASCII
		case ARG_REGISTER:
			kind = ARG_DEREF_REGISTER
		}
	}

	return MakeArgument(kind, inner), true
}

// opcode handles opcode and opcode_alias. The non-argument tokens of an
// opcode form an expression which, if present, becomes cycle 0 for every
// flag combination. Aliases ignore them.
func (p *pass) opcode(st *Statement) (err error) {
	alias := st.Kind == STATEMENT_OPCODE_ALIAS

	value, err := p.number(st, "opcode value")
	if err != nil {
		return
	}

	mnemonic, ok := st.Args.NextWsOrComma()
	if !ok {
		err = ErrMissingOperand("mnemonic")
		return
	}

	op := &Opcode{
		Value:    value,
		Mnemonic: mnemonic,
		File:     st.File,
		LineNo:   st.LineNo,
	}

	ev := newEvaluator(p.cfg, &p.model.Symbols)
	for tok, ok := st.Args.NextWsOrComma(); ok; tok, ok = st.Args.NextWsOrComma() {
		arg, isArg := p.argument(tok)
		switch {
		case isArg:
			op.Arguments = append(op.Arguments, arg)
		case alias:
			// Aliases carry no microcode.
		default:
			err = ev.feed(tok)
			if err != nil {
				return
			}
		}
	}

	if alias {
		err = p.model.AddAlias(op)
		if err != nil {
			return
		}
		// Sequences after an alias extend the instruction it aliases.
		p.active, _ = p.model.Resolve(value)
		if p.Verbose {
			log.Printf("  alias 0x%02X %v, signature %v", value, op, op.Signature())
		}
		return
	}

	bits, ok, err := ev.result()
	if err != nil {
		return
	}

	err = p.model.AddOpcode(op)
	if err != nil {
		return
	}
	p.active = op

	if ok {
		p.model.AddCycle(op, ControlPattern{
			Bits:  bits,
			Flags: p.model.AllFlags(),
			Cond:  COND_ALWAYS,
		})
	}

	if p.Verbose {
		log.Printf("  opcode 0x%02X %v, signature %v", value, op, op.Signature())
	}
	return
}

// sequence handles seq, seq_if and seq_else, appending one cycle to the
// active opcode.
func (p *pass) sequence(st *Statement) (err error) {
	op := p.active
	if op == nil {
		err = ErrNoActiveOpcode
		return
	}

	cp := ControlPattern{}

	// seq_if tokens before the colon are flag patterns.
	inPattern := st.Kind == STATEMENT_SEQ_IF
	patterns := 0

	ev := newEvaluator(p.cfg, &p.model.Symbols)
	for tok, ok := st.Args.NextWsOrComma(); ok; tok, ok = st.Args.NextWsOrComma() {
		if tok == ":" {
			inPattern = false
			continue
		}

		if inPattern {
			pattern, colon := strings.CutSuffix(tok, ":")
			var set FlagSet
			set, err = MatchFlags(pattern, p.model.FlagCount)
			if err != nil {
				return
			}
			cp.Flags = cp.Flags.Union(set)
			patterns++
			inPattern = !colon
			continue
		}

		err = ev.feed(tok)
		if err != nil {
			return
		}
	}

	bits, _, err := ev.result()
	if err != nil {
		return
	}
	cp.Bits = bits

	switch st.Kind {
	case STATEMENT_SEQ:
		cp.Cond = COND_ALWAYS
		cp.Flags = p.model.AllFlags()
	case STATEMENT_SEQ_IF:
		cp.Cond = COND_IF
		if patterns == 0 {
			err = ErrMissingOperand("flag pattern")
			return
		}
	case STATEMENT_SEQ_ELSE:
		cp.Cond = COND_ELSE
		cp.Flags = p.model.AllFlags()
		if p.Options.ElseComplement {
			if n, ok := op.lastCond(COND_IF); ok {
				cp.Flags = op.Cycles[n].Flags.Complement(p.model.FlagCount)
			}
		}
	}

	p.model.AddCycle(op, cp)

	if p.Verbose {
		log.Printf("  %v cycle %d = $%08X for flags %v", op.Mnemonic, len(op.Cycles)-1, cp.Bits, cp.Flags)
	}
	return
}

// include handles .include "path". The path is relative to the including
// file.
func (p *pass) include(st *Statement) (err error) {
	name, ok := st.Args.NextQuoted()
	if !ok {
		err = ErrMalformedInclude(strings.TrimSpace(st.Args.Rest()))
		return
	}

	if !st.Args.Empty() {
		err = ErrMalformedInclude(strings.TrimSpace(st.Args.Rest()))
		return
	}

	name = strings.TrimSpace(name)
	if len(name) == 0 {
		err = ErrMalformedInclude(`""`)
		return
	}

	name = path.Join(path.Dir(st.File), strings.ReplaceAll(name, "\\", "/"))

	return p.open(name)
}

// define handles .define NAME expression.
func (p *pass) define(st *Statement) (err error) {
	name, ok := st.Args.NextWsOrComma()
	if !ok {
		err = ErrMissingOperand("constant name")
		return
	}

	ev := newEvaluator(p.cfg, &p.model.Symbols)
	err = ev.feedLine(&st.Args)
	if err != nil {
		return
	}

	value, ok, err := ev.result()
	if err != nil {
		return
	}
	if !ok {
		err = ErrMissingOperand("constant value")
		return
	}

	err = p.model.AddConstant(name, value, st.File, st.LineNo)
	if err != nil {
		return
	}

	if p.Verbose {
		log.Printf("  constant %v = %d", name, value)
	}
	return
}

// org handles .org expression.
func (p *pass) org(st *Statement) (err error) {
	ev := newEvaluator(p.cfg, &p.model.Symbols)
	err = ev.feedLine(&st.Args)
	if err != nil {
		return
	}

	address, ok, err := ev.result()
	if err != nil {
		return
	}
	if !ok {
		err = ErrMissingOperand("address")
		return
	}

	p.model.SetAddress(address)
	return
}
