package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// positionalText moves text arguments that start with a dash behind a "--"
// terminator so the flag parser keeps them as the positional text. A token
// counts as a flag only if it names a registered flag, or is the value of a
// preceding flag that takes one. Arguments that already contain "--" are
// returned unchanged.
func positionalText(rootCmd *cobra.Command, args []string) []string {
	for _, arg := range args {
		if arg == "--" {
			return args
		}
	}

	var rest, texts []string
	expectValue := false
	for _, arg := range args {
		if expectValue {
			rest = append(rest, arg)
			expectValue = false
			continue
		}
		if len(arg) < 2 || arg[0] != '-' {
			rest = append(rest, arg)
			continue
		}

		flag, inlineValue := lookupFlagToken(rootCmd, arg)
		if flag == nil {
			texts = append(texts, arg)
			continue
		}
		rest = append(rest, arg)
		expectValue = !inlineValue && flag.NoOptDefVal == ""
	}

	if len(texts) == 0 {
		return args
	}
	return append(append(rest, "--"), texts...)
}

// helpFlag stands in for the help flag cobra registers lazily at execution.
var helpFlag = &pflag.Flag{Name: "help", Shorthand: "h", NoOptDefVal: "true"}

// lookupFlagToken resolves arg to a flag of the command tree. inlineValue is
// true when arg already carries the flag's value.
func lookupFlagToken(rootCmd *cobra.Command, arg string) (flag *pflag.Flag, inlineValue bool) {
	if strings.HasPrefix(arg, "--") {
		name, _, hasValue := strings.Cut(arg[2:], "=")
		if name == "" || strings.ContainsAny(name, " \t\n") {
			return nil, false
		}
		if name == helpFlag.Name {
			return helpFlag, hasValue
		}
		return findFlag(rootCmd, func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) }), hasValue
	}

	short, tail := arg[1:2], arg[2:]
	if strings.ContainsAny(tail, " \t\n") {
		return nil, false
	}
	if short == helpFlag.Shorthand {
		return helpFlag, tail != ""
	}
	return findFlag(rootCmd, func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(short) }), tail != ""
}

func findFlag(rootCmd *cobra.Command, lookup func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	cmds := append([]*cobra.Command{rootCmd}, rootCmd.Commands()...)
	for _, c := range cmds {
		for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
			if f := lookup(fs); f != nil {
				return f
			}
		}
	}
	return nil
}
