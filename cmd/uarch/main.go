// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ezrec/uarch/arch"
	"github.com/ezrec/uarch/token"
	"github.com/ezrec/uarch/translate"
)

var (
	verbose        bool
	configFile     string
	shadow         bool
	elseComplement bool
	list           bool
	dump           bool
	lang           string
)

var rootCmd = &cobra.Command{
	Use:   "uarch definition",
	Short: "Microcoded CPU architecture compiler",
	Long: `Uarch compiles an architecture definition: the bit widths, ROM shapes,
registers, flags, control lines and per-cycle microcode of every opcode of a
microcoded processor. Definitions may be split across files with .include
directives, resolved relative to the including file.
`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if len(lang) != 0 {
			err = translate.SetLanguage(lang)
			if err != nil {
				return
			}
		}

		c := &arch.Compiler{
			Verbose: verbose,
			Options: arch.Options{
				ElseComplement: elseComplement,
			},
		}
		if shadow {
			c.Options.Duplicates = arch.DUPLICATE_SHADOW
		}

		if len(configFile) != 0 {
			c.Config, err = token.LoadConfig(os.DirFS(filepath.Dir(configFile)), filepath.Base(configFile))
			if err != nil {
				return
			}
		}

		dir, name := filepath.Split(args[0])
		if len(dir) == 0 {
			dir = "."
		}

		model, err := c.Compile(os.DirFS(dir), name)
		if err != nil {
			return
		}

		if list {
			writeListing(cmd.OutOrStdout(), model)
		}

		if dump {
			spew.Fdump(cmd.OutOrStdout(), model)
		}

		return
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every statement")
	flags.StringVarP(&configFile, "config", "c", "", "TOML file of syntax keys")
	flags.BoolVar(&shadow, "shadow", false, "let redefinitions replace earlier definitions")
	flags.BoolVar(&elseComplement, "else-complement", false, "seq_else applies only where the preceding seq_if did not")
	flags.BoolVarP(&list, "list", "l", false, "print a listing of the compiled architecture")
	flags.BoolVar(&dump, "dump", false, "dump the compiled model")
	flags.StringVar(&lang, "lang", "", "message language, as a BCP 47 tag")
}

func main() {
	log.SetFlags(0)

	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("%v: %v", highlight(rootCmd.Name()), err)
	}
}
