// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package arch

import (
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/ezrec/uarch/token"
)

// Compiler is a single pass compiler for architecture definitions.
type Compiler struct {
	Verbose bool         // If set, verbosely logs each statement.
	Config  token.Config // Syntax keys; the zero value selects token.DefaultConfig().
	Options Options      // Semantic options.
}

// pass is the state of one compilation.
type pass struct {
	*Compiler
	cfg   token.Config
	fsys  fs.FS
	model *Model
	files FileStack

	// active is the opcode that seq, seq_if and seq_else extend.
	active *Opcode
}

// Compile builds a model from a definition file. Included files are resolved
// relative to the including file within fsys.
func (c *Compiler) Compile(fsys fs.FS, name string) (model *Model, err error) {
	p, err := c.newPass(fsys)
	if err != nil {
		return
	}
	defer p.files.Close()

	err = p.open(name)
	if err != nil {
		return
	}

	return p.compile()
}

// CompileReader builds a model from an already open definition. Included
// files are resolved relative to name, within the working directory.
func (c *Compiler) CompileReader(name string, input io.Reader) (model *Model, err error) {
	p, err := c.newPass(os.DirFS("."))
	if err != nil {
		return
	}
	defer p.files.Close()

	p.files.Push(name, input)

	return p.compile()
}

func (c *Compiler) newPass(fsys fs.FS) (p *pass, err error) {
	cfg := c.Config
	if cfg == (token.Config{}) {
		cfg = token.DefaultConfig()
	}

	err = cfg.Validate()
	if err != nil {
		return
	}

	p = &pass{
		Compiler: c,
		cfg:      cfg,
		fsys:     fsys,
		model:    NewModel(c.Options.Duplicates),
	}
	return
}

func (p *pass) compile() (model *Model, err error) {
	err = p.run()
	if err != nil {
		return
	}

	model = p.model
	return
}

// open pushes a file onto the inclusion stack.
func (p *pass) open(name string) (err error) {
	file, err := p.fsys.Open(name)
	if err != nil {
		err = &ErrIO{Path: name, Err: err}
		return
	}

	if p.Verbose {
		log.Printf("processing file %v", name)
	}

	p.files.Push(name, file)
	return
}

// run processes lines until the outermost file is exhausted.
func (p *pass) run() (err error) {
	for {
		var lineno int
		var text string
		lineno, text, err = p.files.Next()
		if err == io.EOF {
			last := !p.files.HasParent()
			err = p.files.PopToParent()
			if err != nil || last {
				return
			}
			continue
		}
		if err != nil {
			return
		}

		err = p.line(p.files.CurrentName(), lineno, text)
		if err != nil {
			return
		}
	}
}

// line classifies and dispatches one source line.
func (p *pass) line(file string, lineno int, text string) (err error) {
	ln := token.NewLine(p.cfg.StripComment(text))

	label, ok := ln.Next()
	if !ok {
		return
	}

	defer func() {
		if err != nil {
			err = &ErrStatement{File: file, LineNo: lineno, Label: label, Err: err}
		}
	}()

	kind, directive, err := Classify(p.cfg, label)
	if err != nil || kind == STATEMENT_NONE {
		return
	}

	rest, err := substitute(&p.model.Symbols, ln.Rest(), lineno)
	if err != nil {
		return
	}

	if p.Verbose {
		log.Printf("%v:%d: %v %v", file, lineno, label, strings.TrimSpace(rest))
	}

	st := &Statement{
		Kind:      kind,
		Directive: directive,
		Label:     label,
		Args:      token.NewLine(rest),
		File:      file,
		LineNo:    lineno,
	}

	return p.dispatch(st)
}

// dispatch routes a statement to its handler.
func (p *pass) dispatch(st *Statement) (err error) {
	switch st.Kind {
	case STATEMENT_INSTRUCTION_WIDTH, STATEMENT_ADDRESS_WIDTH:
		err = p.bitWidth(st)
	case STATEMENT_DECODER_ROM, STATEMENT_PROGRAM_ROM:
		err = p.rom(st)
	case STATEMENT_REGISTER:
		err = p.register(st)
	case STATEMENT_FLAG, STATEMENT_DEVICE:
		err = p.flagDevice(st)
	case STATEMENT_CONTROL:
		err = p.control(st)
	case STATEMENT_OPCODE, STATEMENT_OPCODE_ALIAS:
		err = p.opcode(st)
	case STATEMENT_SEQ, STATEMENT_SEQ_IF, STATEMENT_SEQ_ELSE:
		err = p.sequence(st)
	case STATEMENT_DIRECTIVE:
		switch st.Directive {
		case DIRECTIVE_INCLUDE:
			err = p.include(st)
		case DIRECTIVE_DEFINE:
			err = p.define(st)
		case DIRECTIVE_ORG:
			err = p.org(st)
		}
	}

	return
}
