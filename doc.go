// Package optparse provides a declarative wrapper around getopt-style command
// line parsing. A single registry correlates long and short option forms,
// dispatches matches to registered callbacks, and renders aligned help text
// from the same table, so a flag is described exactly once.
//
// A registry is built by chaining [Flags.Add] and [Flags.AddSwitch] calls,
// optionally closed with [Flags.Done], and then pointed at an argument vector
// with [Flags.Parse]:
//
//	var (
//		level   int
//		verbose bool
//	)
//	fs := optparse.New().
//		Add("level", 'l', "N", "set the debug level", optparse.Set(&level)).
//		AddSwitch("verbose", 'v', "enable verbose output", optparse.Store(&verbose, true))
//	if err := fs.Parse(os.Args[1:]); err != nil {
//		// ...
//	}
//
// The token-by-token scan is delegated to the src.elv.sh/pkg/getopt package in
// GNU mode: options and operands may be interleaved, short switches cluster
// ("-vq"), arguments attach with "=" or follow as the next token, and "--"
// ends option parsing. Callbacks run in the order flags appear on the command
// line, which lets later flags override earlier ones naturally.
package optparse
