package argparse

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// Options configures a [Parser]. All fields are optional; a nil *Options may
// be passed to [New] to accept the defaults.
type Options struct {
	// Output is the destination for help text. If nil, [os.Stdout] is used.
	Output io.Writer

	// Exit is invoked with the process exit code after help text has been
	// printed. If nil, [os.Exit] is used. Tests can supply a no-op to
	// observe the help path without terminating the process, in which case
	// [Parser.Parse] returns [ErrHelp].
	Exit func(code int)

	// Description is an optional free-form paragraph printed between the
	// usage line and the argument blocks in help output.
	Description string

	// NoHelp suppresses the implicit -h/--help option. When set, "help" is
	// an ordinary reference name available for the caller's own use.
	NoHelp bool

	// NoColor disables styled help output even when the output stream
	// supports it.
	NoColor bool
}

// Parser holds argument definitions and, after a successful [Parser.Parse],
// the matched values.
//
// A Parser is built for a single invocation: declare every argument first,
// parse once, then retrieve values. Declaring arguments after parsing is
// unsupported. A Parser is not safe for concurrent use.
type Parser struct {
	opts Options

	// program is argv[0], captured at parse time. It prefixes every
	// user-input error so messages can be printed verbatim.
	program string

	positionalOrder []string
	positionals     map[string]*Positional
	optionalOrder   []string
	optionals       map[string]*Optional
	flags           map[byte]string // short flag character -> reference name
}

// New returns a Parser configured with opts. Unless [Options.NoHelp] is set,
// an implicit -h/--help flag is pre-registered; encountering it during
// [Parser.Parse] prints the full help text and exits with status 0.
func New(opts *Options) *Parser {
	p := &Parser{
		positionals: make(map[string]*Positional),
		optionals:   make(map[string]*Optional),
		flags:       make(map[byte]string),
	}
	if opts != nil {
		p.opts = *opts
	}
	if p.opts.Output == nil {
		p.opts.Output = os.Stdout
	}
	if p.opts.Exit == nil {
		p.opts.Exit = os.Exit
	}
	if !p.opts.NoHelp {
		p.AddOptional("--help", Flag).Flag('h').Help("display this help text")
	}
	return p
}

var (
	// positionalNameRe accepts names starting with a word character followed
	// by word characters or hyphens.
	positionalNameRe = regexp.MustCompile(`^\w[\w-]*$`)

	// optionTokenRe is the grammar that makes an input token an option
	// reference: "-" plus one non-digit word character, or "-"/"--" plus a
	// multi-character word-ish name.
	optionTokenRe = regexp.MustCompile(`^-([A-Za-z_]|-?[A-Za-z_][A-Za-z0-9_-]+)$`)

	// longNameRe matches a declared long name and captures the reference
	// name with the leading dashes stripped.
	longNameRe = regexp.MustCompile(`^--?([A-Za-z_][A-Za-z0-9_-]+)$`)

	// flagTokenRe matches a short flag token and captures its character.
	flagTokenRe = regexp.MustCompile(`^-([A-Za-z_])$`)
)

// AddPositional declares a positional argument with the given name. The name
// appears in help text and is the key used to retrieve the matched value.
//
// Positional arguments bind to input tokens in declaration order: the first
// declared positional receives the first non-option token, and so on.
//
// AddPositional panics if the name is malformed, already declared, or
// collides with an optional argument's reference name.
func (p *Parser) AddPositional(name string) *Positional {
	if !positionalNameRe.MatchString(name) {
		configPanic("invalid positional argument name %q", name)
	}
	if _, ok := p.optionals[name]; ok {
		configPanic("positional argument name %q conflicts with an optional argument reference name", name)
	}
	if _, ok := p.positionals[name]; ok {
		configPanic("duplicate positional argument name %q", name)
	}
	arg := &Positional{name: name}
	p.positionals[name] = arg
	p.positionalOrder = append(p.positionalOrder, name)
	return arg
}

// AddOptional declares an optional argument with the given long name and
// kind. The long name must start with "-" or "--" followed by a letter or
// underscore; the reference name used in help text and for retrieval is the
// long name with the leading dashes stripped.
//
// AddOptional panics if the long name is malformed, already declared, or
// collides with a positional argument name.
func (p *Parser) AddOptional(longName string, kind Kind) *Optional {
	m := longNameRe.FindStringSubmatch(longName)
	if m == nil {
		configPanic("invalid optional argument name %q", longName)
	}
	name := m[1]
	if _, ok := p.positionals[name]; ok {
		configPanic("optional argument reference name %q conflicts with a positional argument name", name)
	}
	if _, ok := p.optionals[name]; ok {
		configPanic("duplicate optional argument name %q", name)
	}
	arg := &Optional{name: name, kind: kind, parser: p}
	p.optionals[name] = arg
	p.optionalOrder = append(p.optionalOrder, name)
	return arg
}

// Has reports whether the user supplied at least one value for the named
// optional argument. It panics if no optional argument with that reference
// name was declared.
func (p *Parser) Has(name string) bool {
	return p.lookupOptional(name).exists()
}

// Count returns the number of values the user supplied for the named
// optional argument. It panics if no optional argument with that reference
// name was declared.
func (p *Parser) Count(name string) int {
	return len(p.lookupOptional(name).values)
}

func (p *Parser) lookupOptional(name string) *Optional {
	arg, ok := p.optionals[name]
	if !ok {
		configPanic("no optional argument by the name %q", name)
	}
	return arg
}

// programName returns the name used in usage and error text. Before Parse
// has run it falls back to the current process name.
func (p *Parser) programName() string {
	if p.program != "" {
		return p.program
	}
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return ""
}
