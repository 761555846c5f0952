package argparse

import (
	"errors"
	"fmt"
	"os"
)

// Parse matches argv against the registered argument definitions. argv[0] is
// the program name; it prefixes every user-input error message and is
// preserved as the first element of the returned remainder.
//
// Matching runs in two phases. The classification pass walks argv[1:],
// resolving option references (short flags through the flag table, long
// names by stripping dashes) and collecting everything else as positional
// candidates in input order. The binding phase then assigns the first N
// candidates to the N declared positionals in declaration order and returns
// the surplus, with the program name re-prepended, as the remainder.
//
// Parse is all-or-nothing: on error no definition is populated and argv is
// left untouched, so the caller can print diagnostics against pristine
// state. Errors are *[ArgumentError] values, except for the built-in help
// option: encountering -h or --help prints the full help text to the
// configured output and calls the configured Exit hook with status 0. If the
// hook returns, Parse returns [ErrHelp].
func (p *Parser) Parse(argv []string) ([]string, error) {
	if len(argv) == 0 {
		configPanic("empty argument vector: argv[0] must be the program name")
	}
	p.program = argv[0]

	positionals, optionals, err := p.match(argv[1:])
	if err != nil {
		return nil, err
	}

	for i, name := range p.positionalOrder {
		arg := p.positionals[name]
		arg.value = positionals[i]
		arg.set = true
	}
	for _, arg := range p.optionals {
		arg.values = optionals[arg.name]
	}

	rest := make([]string, 0, 1+len(positionals)-len(p.positionalOrder))
	rest = append(rest, argv[0])
	rest = append(rest, positionals[len(p.positionalOrder):]...)
	return rest, nil
}

// MustParse is a convenience wrapper around [Parser.Parse] for main
// functions. Help requests exit with status 0 after the help text has been
// printed; user-input errors are printed to stderr and exit with status 1.
// Otherwise MustParse returns the remainder.
func (p *Parser) MustParse(argv []string) []string {
	rest, err := p.Parse(argv)
	if errors.Is(err, ErrHelp) {
		p.opts.Exit(0)
		return nil
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		p.opts.Exit(1)
		return nil
	}
	return rest
}

// match performs the classification pass over the tokens following the
// program name. Results are staged in locals so a failed parse leaves the
// definitions untouched.
func (p *Parser) match(args []string) ([]string, map[string][]string, error) {
	var positionals []string
	optionals := make(map[string][]string)
	occurs := make(map[string]int)

	for i := 0; i < len(args); i++ {
		name, err := p.resolveOption(args[i])
		if err != nil {
			return nil, nil, err
		}
		if name == "" {
			positionals = append(positionals, args[i])
			continue
		}

		if name == "help" && !p.opts.NoHelp {
			fmt.Fprint(p.opts.Output, p.Help())
			p.opts.Exit(0)
			return nil, nil, ErrHelp
		}

		arg, ok := p.optionals[name]
		if !ok {
			return nil, nil, p.errorf("invalid option '%s', pass --help to display possible options", name)
		}
		occurs[name]++
		if arg.kind == Flag {
			if occurs[name] > 1 {
				return nil, nil, p.errorf("'%s' should only be specified once", name)
			}
			optionals[name] = append(optionals[name], "true")
			continue
		}

		// Single and Append consume the following token as the value. A
		// token matching the option grammar is never a value, even when it
		// is not a registered option.
		i++
		if i == len(args) || optionTokenRe.MatchString(args[i]) {
			return nil, nil, p.errorf("'%s' requires a value", name)
		}
		if arg.kind == Single && occurs[name] > 1 {
			return nil, nil, p.errorf("'%s' should only be specified once", name)
		}
		optionals[name] = append(optionals[name], args[i])
	}

	if len(positionals) < len(p.positionalOrder) {
		return nil, nil, p.errorf("requires positional argument '%s'", p.positionalOrder[len(positionals)])
	}
	return positionals, optionals, nil
}

// resolveOption classifies a token, returning the registered reference name
// for option tokens and "" for positional candidates. An unregistered short
// flag is reported immediately; unregistered long names are reported by the
// caller after the help reference has been checked.
func (p *Parser) resolveOption(tok string) (string, error) {
	if m := flagTokenRe.FindStringSubmatch(tok); m != nil {
		name, ok := p.flags[m[1][0]]
		if !ok {
			return "", p.errorf("invalid flag '%s', pass --help to display possible options", tok)
		}
		return name, nil
	}
	if m := longNameRe.FindStringSubmatch(tok); m != nil {
		return m[1], nil
	}
	return "", nil
}
