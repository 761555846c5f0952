// Package argparse implements command-line argument parsing over a single
// flat namespace of positional and optional arguments.
//
// Usage steps:
//  1. Register argument definitions with [Parser.AddPositional] and
//     [Parser.AddOptional].
//  2. Pass the raw argument vector, including the program name, to
//     [Parser.Parse] (or [Parser.MustParse] from a main function).
//  3. Retrieve matched values by name with [Get], [GetOr], [GetAt],
//     [GetAtOr], or [GetAll].
//
// Example:
//
//	p := argparse.New(nil)
//	p.AddPositional("name").Help("name to greet")
//	p.AddOptional("--shout", argparse.Flag).Flag('s').Help("greet loudly")
//	rest := p.MustParse(os.Args)
//
//	name, err := argparse.Get[string](p, "name")
//	shout, err := argparse.Get[bool](p, "shout")
//
// Positional tokens beyond the declared count are not an error; they are
// returned from [Parser.Parse] after the program name so the caller can
// process them separately.
//
// Registration mistakes (malformed names, duplicates, namespace collisions)
// are programmer errors and panic, in the same spirit as
// [flag.FlagSet.Var] panicking on duplicate registration. Malformed user
// input is reported as an *[ArgumentError] carrying a program-name-prefixed
// message that can be printed as-is.
package argparse
