// Package arch compiles architecture definitions for microcoded CPUs.
//
// A definition is a line oriented text file declaring the bit widths, ROM
// shapes, registers, flags, control lines and opcodes of a homebrew
// processor, together with the control line pattern asserted during every
// microcode cycle of every opcode. Cycles may be conditioned on the machine
// flags with seq_if/seq_else wildcard patterns. Definitions may be split
// across files with .include.
//
// The Compiler makes a single forward pass over the definition and builds a
// Model, from which microcode ROM images and the decoder table are derived.
package arch
