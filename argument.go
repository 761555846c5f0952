package argparse

// Kind is the cardinality contract for an optional argument.
type Kind int

const (
	// Flag is a zero-arity optional. Presence records the value "true";
	// absence retrieves as boolean false. A Flag may not be repeated.
	Flag Kind = iota

	// Single expects exactly one value when present. Repeating a Single
	// optional is a user-input error.
	Single

	// Append accepts zero or more occurrences, each consuming one value.
	// Values are recorded in order of appearance and are independently
	// retrievable by index with [GetAt].
	Append
)

// Positional describes a declared positional argument. Handles are returned
// from [Parser.AddPositional] so help text can be chained onto the
// declaration:
//
//	p.AddPositional("input").Help("path to the input file")
type Positional struct {
	name  string
	help  string
	value string
	set   bool
}

// Help sets the help text displayed for this argument and returns the same
// handle for chaining.
func (a *Positional) Help(text string) *Positional {
	a.help = text
	return a
}

// Optional describes a declared optional argument. Handles are returned from
// [Parser.AddOptional] so a short flag and help text can be chained onto the
// declaration:
//
//	p.AddOptional("--filter", argparse.Append).Flag('f').Help("filter to apply")
type Optional struct {
	name   string // long name with the leading dashes stripped
	kind   Kind
	flag   byte // 0 when no short flag is associated
	help   string
	values []string

	parser *Parser
}

// Flag associates a single-character short alias with this optional
// argument. The character must be a letter or underscore. Flag panics if the
// character is invalid or already in use by another optional.
func (o *Optional) Flag(c byte) *Optional {
	if !isFlagChar(c) {
		configPanic("invalid flag name %q", "-"+string(c))
	}
	if _, ok := o.parser.flags[c]; ok {
		configPanic("duplicate flag name %q", "-"+string(c))
	}
	o.flag = c
	o.parser.flags[c] = o.name
	return o
}

// Help sets the help text displayed for this argument and returns the same
// handle for chaining.
func (o *Optional) Help(text string) *Optional {
	o.help = text
	return o
}

// exists reports whether the user supplied the argument at least once.
func (o *Optional) exists() bool {
	return len(o.values) > 0
}

func isFlagChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
