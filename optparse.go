package optparse

import (
	"fmt"
	"log/slog"
	"strings"

	"src.elv.sh/pkg/getopt"
)

// LongOnly is the short-form sentinel for flags that have no single-character
// spelling. Flags registered with it are reachable only as "--name"; the
// registry assigns them a synthesized internal code from a range that can
// never collide with a real short option.
const LongOnly rune = 0

// Synthesized codes for long-only flags count down from here. Zero is the
// LongOnly sentinel and positive values are real short options, so negative
// codes are free.
const longOnlyBase rune = -2

// Handler is the callback invoked when a flag that takes an argument is
// matched. It receives the argument text exactly as it appeared on the
// command line; returning a non-nil error aborts the parse.
type Handler func(value string) error

// Flag describes a single registered option.
type Flag struct {
	Name    string // long form, without the leading dashes
	Short   rune   // short form, or LongOnly
	Metavar string // argument placeholder shown in help; empty for switches
	Help    string

	handler Handler
	code    rune // Short, or a synthesized negative code for long-only flags
}

// TakesArg reports whether the flag requires an argument.
func (f *Flag) TakesArg() bool { return f.Metavar != "" }

// Flags is a registry of command-line flags together with the derived tables
// the underlying getopt scan consumes. The zero value is ready to use.
// Registration methods return the receiver so calls can be chained, and must
// all happen before the registry is finalized by [Flags.Done] or implicitly by
// the first [Flags.Parse].
type Flags struct {
	flags  []*Flag
	byName map[string]*Flag
	byCode map[rune]*Flag

	// Derived by Done.
	shortSpec string
	specs     []*getopt.OptionSpec
	specFlag  map[*getopt.OptionSpec]*Flag

	nextCode rune
	closed   bool

	args []string // operands left over by the last Parse
}

// New returns an empty registry.
func New() *Flags {
	return &Flags{}
}

func (s *Flags) init() {
	if s.byName == nil {
		s.byName = make(map[string]*Flag)
		s.byCode = make(map[rune]*Flag)
		s.nextCode = longOnlyBase
	}
}

func (s *Flags) register(f *Flag) *Flags {
	if s.closed {
		panic("optparse: registration after Done")
	}
	if f.Name == "" {
		panic("optparse: flag has no name")
	}
	if f.Short < 0 {
		panic(fmt.Sprintf("optparse: flag --%s: negative short code %d is reserved", f.Name, f.Short))
	}
	s.init()
	if _, ok := s.byName[f.Name]; ok {
		panic(fmt.Sprintf("optparse: flag redefined: --%s", f.Name))
	}
	if f.Short == LongOnly {
		f.code = s.nextCode
		s.nextCode--
	} else {
		if _, ok := s.byCode[f.Short]; ok {
			panic(fmt.Sprintf("optparse: short flag redefined: -%c", f.Short))
		}
		f.code = f.Short
	}
	s.flags = append(s.flags, f)
	s.byName[f.Name] = f
	s.byCode[f.code] = f
	return s
}

// Add registers a flag that takes a required argument and returns the
// receiver. The flag is matched as "--name" and, unless short is [LongOnly],
// as "-<short>". metavar names the argument in help output and must not be
// empty; use [Flags.AddSwitch] for flags without an argument. fn is invoked
// with the argument text each time the flag is matched.
//
// Add panics if name is empty, if name or short is already registered, or if
// the registry has been finalized.
func (s *Flags) Add(name string, short rune, metavar, help string, fn Handler) *Flags {
	if metavar == "" {
		panic(fmt.Sprintf("optparse: flag --%s: empty metavar; use AddSwitch for flags without an argument", name))
	}
	return s.register(&Flag{Name: name, Short: short, Metavar: metavar, Help: help, handler: fn})
}

// AddSwitch registers a flag that takes no argument and returns the receiver.
// fn is invoked each time the flag is matched. The same name and short rules
// as [Flags.Add] apply.
func (s *Flags) AddSwitch(name string, short rune, help string, fn func() error) *Flags {
	return s.register(&Flag{
		Name:    name,
		Short:   short,
		Help:    help,
		handler: func(string) error { return fn() },
	})
}

// Done finalizes the registry and returns the receiver. It derives the tables
// the scan consumes: a getopt(3)-style short-option specification (one
// character per short form, followed by ':' when the flag takes an argument)
// and one option spec per flag for the underlying parser. Registration after
// Done panics. Calling Done again is a no-op, and Parse calls it implicitly,
// so most callers never need to.
func (s *Flags) Done() *Flags {
	if s.closed {
		return s
	}
	s.init()
	var short strings.Builder
	s.specs = make([]*getopt.OptionSpec, 0, len(s.flags))
	s.specFlag = make(map[*getopt.OptionSpec]*Flag, len(s.flags))
	for _, f := range s.flags {
		arity := getopt.NoArgument
		if f.TakesArg() {
			arity = getopt.RequiredArgument
		}
		spec := &getopt.OptionSpec{Long: f.Name, Arity: arity}
		if f.Short != LongOnly {
			spec.Short = f.Short
			short.WriteRune(f.Short)
			if f.TakesArg() {
				short.WriteByte(':')
			}
		}
		s.specs = append(s.specs, spec)
		s.specFlag[spec] = f
	}
	s.shortSpec = short.String()
	s.closed = true
	slog.Debug("optparse: registry finalized", "flags", len(s.flags), "shortopts", s.shortSpec)
	return s
}

// Parse scans args, which is the argument vector without the program name
// (typically os.Args[1:]), and invokes the callback of every matched flag in
// command line order. The registry is finalized first if [Flags.Done] has not
// been called.
//
// The scan itself is delegated to getopt in GNU mode: options and operands
// may be interleaved and "--" terminates option parsing. Scan failures, such
// as an unrecognized option or a missing required argument, are returned as
// the scanner reported them. A no-argument flag given an attached value
// ("--verbose=false") is rejected; the bare "--name=" spelling carries an
// empty value and cannot be distinguished from no argument here. A callback
// failure aborts the parse and is returned wrapped with the flag name. On a
// successful scan the remaining operands are available from [Flags.Args].
func (s *Flags) Parse(args []string) error {
	s.Done()
	s.args = nil
	opts, rest, err := getopt.Parse(args, s.specs, getopt.GNU)
	if err != nil {
		return fmt.Errorf("optparse: %w", err)
	}
	s.args = rest
	for _, opt := range opts {
		f := s.specFlag[opt.Spec]
		if !f.TakesArg() && opt.Argument != "" {
			return fmt.Errorf("optparse: flag --%s does not take an argument", f.Name)
		}
		if err := f.handler(opt.Argument); err != nil {
			return fmt.Errorf("optparse: flag --%s: %w", f.Name, err)
		}
	}
	slog.Debug("optparse: parse complete", "matched", len(opts), "operands", len(rest))
	return nil
}

// Args returns the operands left over by the last [Flags.Parse]: every
// argument the scan did not consume as an option or an option's argument.
// A Parse whose scan fails clears them; a callback failure happens after
// the scan and leaves them in place.
func (s *Flags) Args() []string { return s.args }

// NArg returns the number of operands left over by the last [Flags.Parse].
func (s *Flags) NArg() int { return len(s.args) }

// Lookup returns the flag registered under the given long name, or nil if no
// such flag exists.
func (s *Flags) Lookup(name string) *Flag { return s.byName[name] }

// VisitAll calls fn for every registered flag, in registration order.
func (s *Flags) VisitAll(fn func(*Flag)) {
	for _, f := range s.flags {
		fn(f)
	}
}
